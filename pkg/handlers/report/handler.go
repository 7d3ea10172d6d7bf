package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Mrasyid-dev/pos-system/pkg/models/api"
	"github.com/Mrasyid-dev/pos-system/pkg/models/domain"
	"github.com/Mrasyid-dev/pos-system/pkg/services/export"
	"github.com/Mrasyid-dev/pos-system/pkg/services/report"
)

const (
	dateLayout = "2006-01-02"

	// exportTopProductsLimit matches the ranking size shown on the reports
	// screen, so the exported document mirrors what the user sees.
	exportTopProductsLimit = 20

	maxTemplateUploadBytes = 10 << 20 // 10MB
)

type Handler struct {
	reports  report.Service
	exporter *export.Exporter
}

func NewHandler(reports report.Service, exporter *export.Exporter) *Handler {
	return &Handler{
		reports:  reports,
		exporter: exporter,
	}
}

func (h *Handler) GetSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period, ok := h.resolvePeriod(w, r)
	if !ok {
		return
	}

	sales, err := h.reports.SalesByDate(ctx, period)
	if err != nil {
		h.serverError(w, r, err, "failed to load sales by date")
		return
	}

	response := make([]api.SalesByDate, len(sales))
	for i, s := range sales {
		response[i] = api.SalesByDate{
			SaleDate:          s.Date.Format(dateLayout),
			TotalTransactions: s.Transactions,
			TotalRevenue:      money(s.Revenue),
		}
	}
	h.respondJSON(w, r, response)
}

func (h *Handler) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period, ok := h.resolvePeriod(w, r)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.reports.TopProducts(ctx, period, limit)
	if err != nil {
		h.serverError(w, r, err, "failed to load top products")
		return
	}

	response := make([]api.TopProduct, len(products))
	for i, p := range products {
		response[i] = api.TopProduct{
			ProductName:  p.Name,
			SKU:          p.SKU,
			TotalQtySold: p.QuantitySold,
			TotalRevenue: money(p.Revenue),
		}
	}
	h.respondJSON(w, r, response)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period, ok := h.resolvePeriod(w, r)
	if !ok {
		return
	}

	stats, err := h.reports.Stats(ctx, period)
	if err != nil {
		h.serverError(w, r, err, "failed to load sales stats")
		return
	}

	h.respondJSON(w, r, api.SalesStats{
		TotalSales:    stats.TotalSales,
		TotalRevenue:  money(stats.TotalRevenue),
		AvgSaleAmount: money(stats.AvgSaleAmount),
	})
}

func (h *Handler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	period, ok := h.resolvePeriod(w, r)
	if !ok {
		return
	}

	stats, err := h.reports.PaymentMethods(ctx, period)
	if err != nil {
		h.serverError(w, r, err, "failed to load payment method stats")
		return
	}

	response := make([]api.PaymentMethodStats, len(stats))
	for i, s := range stats {
		response[i] = api.PaymentMethodStats{
			PaymentMethod:    s.Method,
			TransactionCount: s.Transactions,
			TotalAmount:      money(s.Amount),
		}
	}
	h.respondJSON(w, r, response)
}

// ExportReport produces the downloadable spreadsheet. Without a template
// upload it generates a styled document from scratch; with one it fills the
// uploaded template in place. No partial artifact is ever written: every
// failure is reported before the response body starts.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(maxTemplateUploadBytes); err != nil {
		h.badRequest(w, r, "invalid multipart form")
		return
	}

	period, err := report.ResolvePeriod(r.FormValue("from"), r.FormValue("to"))
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	reportType, err := domain.ParseReportType(r.FormValue("report_type"))
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}

	opts := export.Options{ReportType: reportType}
	if file, header, err := r.FormFile("template"); err == nil {
		defer file.Close()
		// Reject by extension before reading any bytes.
		if err := export.ValidateUploadName(header.Filename); err != nil {
			h.badRequest(w, r, err.Error())
			return
		}
		raw, err := io.ReadAll(file)
		if err != nil {
			h.badRequest(w, r, "failed to read uploaded template")
			return
		}
		opts.Template = raw
		opts.TemplateName = header.Filename
	}

	ds, err := h.reports.Dataset(ctx, period, exportTopProductsLimit)
	if err != nil {
		h.serverError(w, r, err, "failed to build report dataset")
		return
	}
	tctx := h.reports.ExportContext(period, r.FormValue("custom_header"))

	artifact, err := h.exporter.Export(ds, tctx, opts)
	switch {
	case errors.Is(err, export.ErrInvalidUploadExtension),
		errors.Is(err, export.ErrMalformedTemplate):
		h.badRequest(w, r, err.Error())
		return
	case err != nil:
		h.serverError(w, r, err, "export failed")
		return
	}

	logger.Info().
		Str("filename", artifact.Filename).
		Str("report_type", string(reportType)).
		Bool("template_fill", opts.Template != nil).
		Msg("report exported")
	h.writeArtifact(w, artifact)
}

// DownloadTemplate returns the blank starter template with every placeholder
// token and both marker rows.
func (h *Handler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.exporter.StarterTemplate()
	if err != nil {
		h.serverError(w, r, err, "failed to build starter template")
		return
	}
	h.writeArtifact(w, artifact)
}

func (h *Handler) writeArtifact(w http.ResponseWriter, artifact *export.Artifact) {
	w.Header().Set("Content-Type", artifact.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	_, _ = w.Write(artifact.Data)
}

func (h *Handler) resolvePeriod(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	period, err := report.ResolvePeriod(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.badRequest(w, r, err.Error())
		return domain.Period{}, false
	}
	return period, true
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
