package metrics

import (
	"errors"

	"github.com/osse101/netitem/internal/netitem"
)

// ObserveParse records the outcome of parsing one slot. raw is the input,
// used to tell a payload that decoded to nothing from a genuine empty slot.
func ObserveParse(raw string, rec netitem.NetItem, err error) {
	if err != nil {
		ParseErrors.WithLabelValues(parseErrorReason(err)).Inc()
		return
	}
	RecordsParsed.WithLabelValues(rec.Kind().String()).Inc()
	if rec.IsEmpty() {
		if kind, ok := netitem.Classify(raw); ok && kind == netitem.KindPayload {
			PayloadDecodeAbsent.Inc()
		}
	}
}

func parseErrorReason(err error) string {
	switch {
	case errors.Is(err, netitem.ErrInvalidArgument):
		return ReasonInvalidArgument
	case errors.Is(err, netitem.ErrFormat):
		return ReasonFormat
	default:
		return ReasonOther
	}
}
