package vehicle

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Accepts the legacy Brazilian plate (ABC-1234, hyphen optional) and the
// Mercosul layout (ABC1D23).
var plateRe = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$|^[A-Z]{3}\d[A-Z]\d{2}$`)

// Chassis (VIN) is 17 chars, letters and digits, excluding I, O and Q.
var chassisRe = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

var renavamRe = regexp.MustCompile(`^\d{11}$`)

const (
	minModelYear = 1900
	maxModelYear = 2030
	minNameLen   = 2
	maxNameLen   = 100
)

// ValidationErrors maps field names to every violation found for them, so
// a field can report more than one message at once.
type ValidationErrors map[string][]string

func (e ValidationErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// NormalizePlate uppercases and trims a plate before validation and storage.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// NormalizeChassis uppercases and trims a chassis number.
func NormalizeChassis(chassis string) string {
	return strings.ToUpper(strings.TrimSpace(chassis))
}

func validPlate(plate string) bool {
	return plateRe.MatchString(plate)
}

func validChassis(chassis string) bool {
	return chassisRe.MatchString(chassis)
}

func validRenavam(renavam string) bool {
	return renavamRe.MatchString(renavam)
}

func validModelYear(year int) bool {
	return year >= minModelYear && year <= maxModelYear
}

func validName(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= minNameLen && n <= maxNameLen
}
