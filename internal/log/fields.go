package log

// Common field names for structured logging
const (
	FieldComponent    = "component"
	FieldFile         = "file"
	FieldOutput       = "output"
	FieldTransactions = "transactions"
	FieldBalance      = "balance"
	FieldDate         = "date"
	FieldMonth        = "month"
	FieldMonths       = "months"
	FieldAmount       = "amount"
	FieldThreshold    = "threshold"
	FieldStatus       = "status"
	FieldError        = "error"
	FieldOperation    = "operation"
	FieldVersion      = "version"
	FieldID           = "id"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentEngine  = "engine"
	ComponentChart   = "chart"
	ComponentEditor  = "editor"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpForecast = "forecast"
	OpCheck    = "check"
	OpDanger   = "danger"
	OpCompress = "compress"
	OpRender   = "render"
	OpAdd      = "add"
	OpEdit     = "edit"
	OpDelete   = "delete"
	OpList     = "list"
)
