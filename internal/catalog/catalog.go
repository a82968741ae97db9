// Package catalog loads the fixed 96-item survey catalog from CSV and serves
// it read-only for the lifetime of the process.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"sbindex/internal/domain"
	"sbindex/internal/model"
)

// Column positions in the source CSV. The file is authored in a spreadsheet
// and column headers drift between encodings, so rows are read by index.
const (
	colDomain        = 0
	colSubCompetency = 1
	colSubElement    = 2
	colSubElementSeq = 3
	colPrompt        = 6
	colSequence      = 5
	colSample        = 7
	colRemark        = 8
)

// Catalog is the loaded item set, sorted by global sequence.
// Safe for concurrent use: no write path exists after Load.
type Catalog struct {
	items []model.SurveyItem
	bySeq map[int]model.SurveyItem
}

// Load reads the catalog CSV. The file may be saved as UTF-8 or CP949
// (Korean Windows); UTF-8 is tried first. A missing file or an empty catalog
// is a fatal error; a malformed row is logged and skipped.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		decoded, _, derr := transform.Bytes(korean.EUCKR.NewDecoder(), raw)
		if derr != nil {
			return nil, fmt.Errorf("decode catalog %s as CP949: %w", path, derr)
		}
		raw = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("catalog %s: no data rows", path)
	}

	c := &Catalog{bySeq: make(map[int]model.SurveyItem)}
	for i, rec := range records[1:] { // skip header
		item, err := parseRow(rec)
		if err != nil {
			log.Printf("Warning: catalog row %d skipped: %v", i+2, err)
			continue
		}
		c.items = append(c.items, item)
		c.bySeq[item.Sequence] = item
	}
	if len(c.items) == 0 {
		return nil, fmt.Errorf("catalog %s: no valid rows", path)
	}

	sort.Slice(c.items, func(i, j int) bool {
		return c.items[i].Sequence < c.items[j].Sequence
	})

	log.Printf("Loaded %d survey items from %s", len(c.items), path)
	return c, nil
}

func parseRow(rec []string) (model.SurveyItem, error) {
	if len(rec) <= colSample {
		return model.SurveyItem{}, fmt.Errorf("expected at least %d columns, got %d", colSample+1, len(rec))
	}
	seq, err := strconv.Atoi(strings.TrimSpace(rec[colSequence]))
	if err != nil {
		return model.SurveyItem{}, fmt.Errorf("sequence: %w", err)
	}
	subSeq, err := strconv.Atoi(strings.TrimSpace(rec[colSubElementSeq]))
	if err != nil {
		return model.SurveyItem{}, fmt.Errorf("sub-element sequence: %w", err)
	}
	sample, err := strconv.Atoi(strings.TrimSpace(rec[colSample]))
	if err != nil {
		return model.SurveyItem{}, fmt.Errorf("sample response: %w", err)
	}
	item := model.SurveyItem{
		Sequence:       seq,
		Domain:         domain.Normalize(rec[colDomain]),
		SubCompetency:  domain.Normalize(rec[colSubCompetency]),
		SubElement:     domain.Normalize(rec[colSubElement]),
		SubElementSeq:  subSeq,
		Prompt:         strings.TrimSpace(rec[colPrompt]),
		SampleResponse: sample,
	}
	if len(rec) > colRemark {
		item.Remark = strings.TrimSpace(rec[colRemark])
	}
	return item, nil
}

// Items returns all items sorted by global sequence. Callers must not mutate.
func (c *Catalog) Items() []model.SurveyItem {
	return c.items
}

// GetBySequence looks an item up by its global sequence number
func (c *Catalog) GetBySequence(seq int) (model.SurveyItem, bool) {
	item, ok := c.bySeq[seq]
	return item, ok
}

// GetByDomain returns the items of one domain in load order
func (c *Catalog) GetByDomain(domainName string) []model.SurveyItem {
	want := domain.Normalize(domainName)
	var out []model.SurveyItem
	for _, item := range c.items {
		if item.Domain == want {
			out = append(out, item)
		}
	}
	return out
}

// AllSequences returns every global sequence number, sorted ascending
func (c *Catalog) AllSequences() []int {
	seqs := make([]int, 0, len(c.items))
	for _, item := range c.items {
		seqs = append(seqs, item.Sequence)
	}
	return seqs
}

// Validate checks that the catalog forms a bijection onto 1..96. This is a
// startup/health-check self-check; scoring never calls it.
func (c *Catalog) Validate() model.CatalogValidation {
	actual := c.AllSequences()
	seen := make(map[int]bool, len(actual))
	for _, s := range actual {
		seen[s] = true
	}

	var missing, extra []int
	for s := 1; s <= model.ExpectedItemCount; s++ {
		if !seen[s] {
			missing = append(missing, s)
		}
	}
	for _, s := range actual {
		if s < 1 || s > model.ExpectedItemCount {
			extra = append(extra, s)
		}
	}
	sort.Ints(extra)

	return model.CatalogValidation{
		TotalCount:      len(actual),
		ExpectedFirst:   1,
		ExpectedLast:    model.ExpectedItemCount,
		ActualSequences: actual,
		Missing:         missing,
		Extra:           extra,
		IsValid:         len(missing) == 0 && len(extra) == 0 && len(actual) == model.ExpectedItemCount,
	}
}
