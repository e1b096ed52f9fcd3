// Package generator builds mock user records for the dashboard.
package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/userdash/internal/services/dashboard/record"
)

var (
	firstNames = []string{
		"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe", "Gabriela", "Hugo",
		"Isabel", "João", "Karina", "Lucas", "Marina", "Nicolas", "Olivia", "Pedro",
		"Rafaela", "Samuel", "Tatiana", "Victor",
	}
	lastNames = []string{
		"Almeida", "Barbosa", "Costa", "Dias", "Ferreira", "Gomes", "Lima",
		"Martins", "Nunes", "Oliveira", "Pereira", "Ribeiro", "Santos", "Teixeira",
	}
	inviters = []string{"Admin", "Ana Costa", "Hugo Lima", "Support Team", "Marina Dias"}
	domains  = []string{"example.com", "mail.test", "corp.example"}
)

// Date window for generated records, both ends inclusive.
var (
	dateStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Generate returns n records with ids "1".."n".
func Generate(rng *rand.Rand, n int) []record.Record {
	if n <= 0 || rng == nil {
		return []record.Record{}
	}
	days := int(dateEnd.Sub(dateStart).Hours()/24) + 1
	statuses := record.Statuses()

	records := make([]record.Record, 0, n)
	for i := 1; i <= n; i++ {
		first := pick(rng, firstNames)
		last := pick(rng, lastNames)
		records = append(records, record.Record{
			ID: strconv.Itoa(i),
			About: record.About{
				Name:   first + " " + last,
				Status: pick(rng, statuses),
				Email:  email(first, last, i, pick(rng, domains)),
			},
			Details: record.Details{
				Date:      record.FormatDate(dateStart.AddDate(0, 0, rng.Intn(days))),
				InvitedBy: pick(rng, inviters),
			},
		})
	}
	return records
}

// GenerateSeeded builds n records from seed, drawing a random seed when it is
// 0. The seed actually used is returned for reproducibility.
func GenerateSeeded(seed int64, n int) ([]record.Record, int64, error) {
	rng, used, err := NewSeededRNG(seed)
	if err != nil {
		return nil, 0, fmt.Errorf("seed generator: %w", err)
	}
	return Generate(rng, n), used, nil
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

// email keeps addresses unique by suffixing the record number.
func email(first, last string, n int, domain string) string {
	local := asciiLower(first) + "." + asciiLower(last) + strconv.Itoa(n)
	return local + "@" + domain
}

// asciiLower lowercases and drops characters that do not belong in a mailbox.
func asciiLower(value string) string {
	replacer := strings.NewReplacer("ã", "a", "á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ç", "c")
	value = replacer.Replace(strings.ToLower(value))
	var b strings.Builder
	for _, r := range value {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
