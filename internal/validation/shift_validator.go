package validation

// ShiftValidator provides validation for shift entry operations
type ShiftValidator struct {
	validator *Validator
}

// NewShiftValidator creates a new shift entry validator
func NewShiftValidator() *ShiftValidator {
	return &ShiftValidator{
		validator: NewValidator(),
	}
}

// ValidateRequiredFields checks that date, start and end are all present.
// This is the contract the entry store enforces: no partial entry is ever
// created. Format checking is a separate, UI-level concern.
func (sv *ShiftValidator) ValidateRequiredFields(date, start, end string) error {
	validationError := NewValidationError()

	if !sv.validator.IsNonEmptyString(date) {
		validationError.AddRequiredError("date")
	}
	if !sv.validator.IsNonEmptyString(start) {
		validationError.AddRequiredError("start")
	}
	if !sv.validator.IsNonEmptyString(end) {
		validationError.AddRequiredError("end")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateFormats checks that date and clock fields look well-formed.
// Used by the CLI before an entry reaches the store.
func (sv *ShiftValidator) ValidateFormats(date, start, end string) error {
	validationError := NewValidationError()

	if !sv.validator.IsValidDate(sv.validator.TrimAndValidateString(date)) {
		validationError.AddInvalidFormatError("date", date, "YYYY-MM-DD")
	}
	if !sv.validator.IsValidClock(sv.validator.TrimAndValidateString(start)) {
		validationError.AddInvalidFormatError("start", start, "HH:MM")
	}
	if !sv.validator.IsValidClock(sv.validator.TrimAndValidateString(end)) {
		validationError.AddInvalidFormatError("end", end, "HH:MM")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateKey validates an entry key
func (sv *ShiftValidator) ValidateKey(key int64) error {
	if !sv.validator.IsValidKey(key) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("key", key, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateContract checks that contract fields are all non-negative
func (sv *ShiftValidator) ValidateContract(contractHours, hourlyRate, extraHourlyRate float64) error {
	validationError := NewValidationError()

	if contractHours < 0 {
		validationError.AddInvalidValueError("contract_hours_per_month", contractHours, "cannot be negative")
	}
	if hourlyRate < 0 {
		validationError.AddInvalidValueError("hourly_rate", hourlyRate, "cannot be negative")
	}
	if extraHourlyRate < 0 {
		validationError.AddInvalidValueError("extra_hourly_rate", extraHourlyRate, "cannot be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
