package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/onnwee/meteodaten/backend/internal/apierr"
	"github.com/onnwee/meteodaten/backend/internal/errorreporting"
	"github.com/onnwee/meteodaten/backend/internal/logger"
	"github.com/onnwee/meteodaten/backend/internal/meteodata"
	"github.com/onnwee/meteodaten/backend/internal/metrics"
	"github.com/onnwee/meteodaten/backend/internal/tracing"
)

// MeteodatenHandler serves the daily weather record set.
type MeteodatenHandler struct {
	loader meteodata.Loader
	strict bool
}

// NewMeteodatenHandler creates a handler reading from loader. When strict is
// false, data errors are answered with 200 like the legacy service did.
func NewMeteodatenHandler(loader meteodata.Loader, strict bool) *MeteodatenHandler {
	return &MeteodatenHandler{loader: loader, strict: strict}
}

// ServeHTTP handles GET /api/py/meteodaten
func (h *MeteodatenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := h.load(r.Context())
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	metrics.DataResponseBytes.Observe(float64(len(doc)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *MeteodatenHandler) load(ctx context.Context) ([]byte, error) {
	ctx, span := tracing.StartSpan(ctx, "meteodata.load")
	defer span.End()

	start := time.Now()
	doc, err := h.loader.Load(ctx)
	outcome := loadOutcome(err)
	metrics.DataLoadsTotal.WithLabelValues(outcome).Inc()
	metrics.DataLoadDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	span.SetAttributes(attribute.String("meteodata.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}
	span.SetAttributes(attribute.Int("meteodata.bytes", len(doc)))
	return doc, nil
}

func loadOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	if kind := meteodata.KindOf(err); kind != meteodata.KindNone {
		return kind.String()
	}
	return meteodata.KindUnreadable.String()
}

func (h *MeteodatenHandler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	// Client went away; nobody reads the body.
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		logger.WithRequestID(ctx).Debug("meteodaten request canceled", "error", err)
		return
	}

	var apiErr *apierr.Error
	switch {
	case meteodata.IsNotFound(err):
		logger.WarnContext(ctx, "meteodaten file not found", "error", err)
		apiErr = apierr.DataNotFound()
	case meteodata.IsInvalidJSON(err):
		logger.ErrorContext(ctx, "meteodaten file is not valid JSON", "error", err)
		apiErr = apierr.DataInvalidJSON()
	default:
		logger.ErrorContext(ctx, "meteodaten file could not be read", "error", err)
		errorreporting.CaptureRequestError(r, err, map[string]string{"component": "meteodata"})
		apiErr = apierr.DataUnreadable()
	}

	if !h.strict {
		apiErr = apiErr.WithStatus(http.StatusOK)
	}
	apierr.WriteErrorWithContext(w, r, apiErr)
}
