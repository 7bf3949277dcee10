package telemetry

const (
	ErrMsgExporterFailed = "failed to create trace exporter"
	ErrMsgResourceFailed = "failed to build trace resource"
)
