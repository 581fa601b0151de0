package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent across the pipeline packages.
const (
	FieldBlock      = "block_index"
	FieldProvider   = "provider"
	FieldItemID     = "item_id"
	FieldConfidence = "confidence"
	FieldDueDate    = "due_date"
	FieldTimezone   = "timezone"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldDuplicates = "duplicates_removed"
)
