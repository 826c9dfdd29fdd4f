package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Lit UI Kit"
	AppID       = "com.github.litlifesoftware.lit-ui-kit"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	DemoWindowWidth  = 420
	DemoWindowHeight = 560

	// Preference Keys
	PrefLanguage   = "language"
	PrefMinimumAge = "minimum_age"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyScreenTitle   = "screen_title"
	TKeyScreenSub     = "screen_subtitle"
	TKeyMsgAgeValid   = "msg_age_valid"
	TKeyMsgAgeInvalid = "msg_age_invalid" // Requires Age (the requirement)
	TKeyLblYourAge    = "lbl_your_age"
	TKeyLblValid      = "lbl_valid"
	TKeyBtnSet        = "btn_set"
	TKeyBtnSubmit     = "btn_submit"
	TKeyBtnCancel     = "btn_cancel"
	TKeyBtnImport     = "btn_import"
	TKeyDlgPickTitle  = "dlg_pick_title"
	TKeyLblYear       = "lbl_year"
	TKeyLblMonth      = "lbl_month"
	TKeyLblDay        = "lbl_day"
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyLblFooter     = "lbl_footer" // Requires Version
	TKeyNotifDenied   = "notif_denied"
	TKeyNotifGranted  = "notif_granted"

	// Validation Errors (UI)
	TKeyErrDateInvalid = "err_date_invalid"
	TKeyErrDateNoYear  = "err_date_no_year"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	// DefaultMinimumAge is the age requirement applied when the host
	// supplies none. Thirteen matches the usual minimum for online services.
	DefaultMinimumAge = 13

	DefaultLanguage = "en"

	// Date entry bounds. MinBirthYear only guards against typos (e.g. "19");
	// the validity check itself never rejects old dates.
	MinBirthYear = 1900
	MinMonth     = 1
	MaxMonth     = 12
	MinDay       = 1
	MaxDay       = 31
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Truncated vCard layouts (--MM-DD). Recognized so they can be rejected
	// with a precise error: an age cannot be verified without a birth year.
	DateFormatNoYearD = "--01-02"
	DateFormatNoYearB = "--0102"

	DateFormatDisplay = "2006-01-02"

	// vCard Fields
	VCardBDAY = "BDAY"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrNoBirthDate   = "no usable birth date in vCard stream"
	ErrDateNoYear    = "birth date has no year component"
	ErrDateParse     = "unable to parse date"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrLocNotInit    = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

// Fallback strings keep the components usable when no localizer is attached
// (library use without SetupI18n, or a missing translation key).
const (
	FallbackScreenTitle   = "Confirm your age"
	FallbackScreenSub     = "Please enter your date of birth."
	FallbackMsgAgeValid   = "Your age has been confirmed."
	FallbackMsgAgeInvalid = "You must be at least %d years old to continue."
	FallbackLblYourAge    = "Your age"
	FallbackLblValid      = "Valid"
	FallbackBtnSet        = "Set"
	FallbackBtnSubmit     = "Submit"
	FallbackNotifDenied   = "Please provide a valid date of birth first."
	FallbackNotifTitle    = "Age confirmation"
	FallbackFooter        = "Lit UI Kit %s"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgDateSet       = "Birth date selected"
	MsgDateCleared   = "Birth date cleared"
	MsgSubmitOK      = "Submission accepted"
	MsgSubmitDenied  = "Submission rejected, age requirement not met"
	MsgImportOK      = "Birth date imported from contact card"
	MsgImportFail    = "Contact card import failed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyAge       = "age_years"
	LogKeyValid     = "valid"
	LogKeyMinAge    = "minimum_age"
	LogKeyDOB       = "date_of_birth"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompAgeGate = "agegate"
	CompMain    = "main"
	CompI18n    = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3

	// FooterMinHeight keeps the gradient band visible even with short text.
	FooterMinHeight = 36
)
