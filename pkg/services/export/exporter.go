package export

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
)

var (
	// ErrInvalidUploadExtension is returned before any parse is attempted
	// when an uploaded template has an unsupported file extension.
	ErrInvalidUploadExtension = errors.New("template must be an .xlsx or .xls file")

	// ErrMalformedTemplate is returned when uploaded bytes cannot be parsed
	// as a workbook, or the workbook has no worksheet.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrSerializationFailure is returned when the finished workbook cannot
	// be serialized; no partial artifact is produced.
	ErrSerializationFailure = errors.New("failed to serialize workbook")
)

const starterTemplateFilename = "report-template.xlsx"

// Options select the export mode. A nil Template produces a generated
// document; otherwise the supplied template is filled in place.
type Options struct {
	ReportType   domain.ReportType
	Template     []byte
	TemplateName string
}

// Artifact is the finished binary document handed back to the caller.
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Exporter produces report workbooks, either generated from scratch or by
// filling a caller-supplied template. Each call owns its workbook privately,
// so concurrent exports do not interfere.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export is the single entry point: it picks template-fill or generate mode,
// serializes the result, and derives the download filename from the period
// bounds. Failures surface before any partial output is produced.
func (e *Exporter) Export(ds *domain.ReportDataset, tctx domain.TemplateContext, opts Options) (*Artifact, error) {
	var (
		f      *excelize.File
		prefix string
		err    error
	)
	if opts.Template != nil {
		if err := ValidateUploadName(opts.TemplateName); err != nil {
			return nil, err
		}
		f, err = fillTemplate(opts.Template, ds, tctx)
		prefix = "custom"
	} else {
		f, err = buildWorkbook(ds, tctx, opts.ReportType)
		prefix = string(opts.ReportType)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return serialize(f, exportFilename(prefix, tctx.PeriodFrom.Format(dateLayout), tctx.PeriodTo.Format(dateLayout)))
}

// StarterTemplate returns the downloadable blank template carrying every
// placeholder token and both marker rows.
func (e *Exporter) StarterTemplate() (*Artifact, error) {
	f, err := buildStarterTemplate()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return serialize(f, starterTemplateFilename)
}

// ValidateUploadName rejects template uploads by extension before any bytes
// are parsed.
func ValidateUploadName(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidUploadExtension, name)
	}
}

// fillTemplate loads the uploaded workbook and mutates it in place: scalar
// tokens first, marker regions second. Scalar resolution cannot disturb
// marker cells since markers are distinct tokens. All surrounding formatting
// is left untouched.
func fillTemplate(raw []byte, ds *domain.ReportDataset, tctx domain.TemplateContext) (*excelize.File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTemplate, err)
	}
	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, fmt.Errorf("%w: workbook has no worksheet", ErrMalformedTemplate)
	}
	if err := resolveScalars(f, sheet, ds, tctx); err != nil {
		f.Close()
		return nil, err
	}
	if err := expandRegions(f, sheet, ds); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func serialize(f *excelize.File, filename string) (*Artifact, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}
	return &Artifact{
		Filename: filename,
		MIMEType: MIMEType,
		Data:     buf.Bytes(),
	}, nil
}

func exportFilename(prefix, from, to string) string {
	return fmt.Sprintf("%s-report-%s-%s.xlsx", prefix, from, to)
}
