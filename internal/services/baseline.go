package services

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"datavista/internal/errors"
)

// LoadBaseline parses the auxiliary per-product-line sales file, one
// `<ProductLine>: <FloatSales>` entry per line. Any malformed line fails
// the whole file; the caller decides whether a missing file is tolerable
// (SOURCE_UNAVAILABLE is returned for that case).
func LoadBaseline(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.SourceUnavailable(err, path)
	}
	defer f.Close()

	baseline := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		name, value, ok := strings.Cut(text, ": ")
		if !ok || name == "" {
			return nil, errors.Parse(nil, fmt.Sprintf("baseline line %d: want \"<ProductLine>: <FloatSales>\", got %q", line, text))
		}

		sales, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, errors.Parse(err, fmt.Sprintf("baseline line %d: bad sales value", line))
		}
		baseline[name] = sales
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Parse(err, "reading baseline file")
	}

	return baseline, nil
}
