package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryValidation,
		Message:  "Unknown view engine",
		Detail:   "The value passed to --view is not a supported view engine.",
		DocURL:   "https://expressgen.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryValidation,
		Message:  "Unknown CSS engine",
		Detail:   "The value passed to --css is not a supported CSS preprocessor.",
		DocURL:   "https://expressgen.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryValidation,
		Message:  "Destination path is not usable",
		Detail:   "The destination could not be resolved to a directory the generator can write to.",
		DocURL:   "https://expressgen.dev/docs/errors/E003",
	},

	// ============================================
	// CLI Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryCLI,
		Message:  "Destination directory is not empty",
		Detail:   "The destination already contains files. Scaffolding would overwrite them.",
		DocURL:   "https://expressgen.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryCLI,
		Message:  "Aborted",
		Detail:   "Scaffolding was cancelled before any files were written.",
		DocURL:   "https://expressgen.dev/docs/errors/E021",
	},

	// ============================================
	// Template Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryTemplate,
		Message:  "Template asset not found",
		Detail:   "A bundled template asset is missing from the generator. This is a packaging defect.",
		DocURL:   "https://expressgen.dev/docs/errors/E040",
	},

	// ============================================
	// Config Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Invalid generator defaults file",
		Detail:   "The expressgen.json defaults file could not be parsed.",
		DocURL:   "https://expressgen.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Invalid engine in defaults file",
		Detail:   "The expressgen.json defaults file names a view or CSS engine the generator does not support.",
		DocURL:   "https://expressgen.dev/docs/errors/E061",
	},

	// ============================================
	// Scaffold Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryScaffold,
		Message:  "Failed to write project file",
		Detail:   "A file or directory could not be created in the destination. The destination may contain a partial project tree.",
		DocURL:   "https://expressgen.dev/docs/errors/E080",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
