package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/dba/army"
)

// HeaderRecord is one row of the army group file:
//
//	ArmyRef,VarCount,GroupName
//	I/1,3,EARLY SUMERIAN 3000BC - 2334BC & THE "GREAT REVOLT" CIRCA 2250BC
type HeaderRecord struct {
	Line      int
	Ref       string
	VarCount  int
	GroupName string
}

// VariantRecord is one row of the army variant file. Book and Army are the
// section and number of the reference, Var its version letter.
type VariantRecord struct {
	Line       int
	Book       int
	Army       int
	Var        string
	Name       string
	Topography string
	Agg        int
	Enemies    string
	Allies     string
	General    string
	Elements   [8]string
}

var (
	headerColumns  = []string{"ArmyRef", "VarCount", "GroupName"}
	variantColumns = []string{"Book", "Army", "Var", "Army Name", "Topography", "Agg", "Enemies", "Allies", "General"}
)

// Ref returns the variant reference, e.g. II/8a.
func (r VariantRecord) Ref() (army.Ref, error) {
	return army.NewRef(r.Book, r.Army, army.VersionNumber(strings.TrimSpace(r.Var)))
}

// Troops assembles the troop definition: the general's element joined to
// "Gen", then each non-empty element column.
func (r VariantRecord) Troops() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(r.General))
	b.WriteString("+Gen")
	for _, e := range r.Elements {
		if e = strings.TrimSpace(e); e != "" {
			b.WriteByte(',')
			b.WriteString(e)
		}
	}
	return b.String()
}

// table reads a CSV file with a header row and gives access to cells by
// column name.
type table struct {
	r       *csv.Reader
	columns map[string]int
}

func newTable(r io.Reader, required []string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	t := &table{r: cr, columns: make(map[string]int, len(head))}
	for i, name := range head {
		t.columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := t.columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return t, nil
}

// next returns the next row and its line number, or io.EOF.
func (t *table) next() ([]string, int, error) {
	row, err := t.r.Read()
	if err != nil {
		return nil, 0, err
	}
	line, _ := t.r.FieldPos(0)
	return row, line, nil
}

func (t *table) cell(row []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) number(row []string, name string) (int, error) {
	s := t.cell(row, name)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", name, s)
	}
	return n, nil
}

// ReadHeaders reads every row of an army group file. Rows that cannot be
// read are reported in the joined error and left out.
func ReadHeaders(r io.Reader) ([]HeaderRecord, error) {
	t, err := newTable(r, headerColumns)
	if err != nil {
		return nil, err
	}
	var records []HeaderRecord
	var errs []error
	for {
		row, line, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records, errors.Join(append(errs, err)...)
		}
		count, err := t.number(row, "VarCount")
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		records = append(records, HeaderRecord{
			Line:      line,
			Ref:       t.cell(row, "ArmyRef"),
			VarCount:  count,
			GroupName: t.cell(row, "GroupName"),
		})
	}
	return records, errors.Join(errs...)
}

// ReadVariants reads every row of an army variant file.
func ReadVariants(r io.Reader) ([]VariantRecord, error) {
	t, err := newTable(r, variantColumns)
	if err != nil {
		return nil, err
	}
	var records []VariantRecord
	var errs []error
	for {
		row, line, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records, errors.Join(append(errs, err)...)
		}
		rec, err := t.variant(row)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		rec.Line = line
		records = append(records, rec)
	}
	return records, errors.Join(errs...)
}

func (t *table) variant(row []string) (VariantRecord, error) {
	var rec VariantRecord
	var err error
	if rec.Book, err = t.number(row, "Book"); err != nil {
		return rec, err
	}
	if rec.Army, err = t.number(row, "Army"); err != nil {
		return rec, err
	}
	if rec.Agg, err = t.number(row, "Agg"); err != nil {
		return rec, err
	}
	rec.Var = t.cell(row, "Var")
	rec.Name = t.cell(row, "Army Name")
	rec.Topography = t.cell(row, "Topography")
	rec.Enemies = t.cell(row, "Enemies")
	rec.Allies = t.cell(row, "Allies")
	rec.General = t.cell(row, "General")
	for i := range rec.Elements {
		rec.Elements[i] = t.cell(row, strconv.Itoa(i+1))
	}
	return rec, nil
}
