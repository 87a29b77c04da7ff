// Package logger provides a small leveled logger that writes one line per
// call to the terminal and, optionally, appends the same line to a file.
//
// # Output
//
// Every line has the form
//
//	2026/10/19 14:03:07 [INFO ] [db    ] connected {"host":"localhost"}
//
// The label segment is omitted for loggers without a label. Strings, numbers,
// booleans, errors and fmt.Stringer values print as text; anything else is
// printed as compact JSON.
//
// # Shared Settings
//
// Loggers do not own their threshold or destinations. Those live in a
// Settings value shared by reference, so changing the level through one
// logger changes it for every logger created from the same Settings:
//
//	s := logger.NewSettings(logger.Config{FilePath: "./app.log"})
//	db := logger.New(s, "db")
//	api := db.Create("api")
//	api.SetLevel(logger.InfoLevel) // db.Debug(...) is now suppressed too
//
// The package-level functions write through a default Logger bound to
// DefaultSettings.
//
// # Levels
//
// ERROR < WARN < INFO < DEBUG. A threshold admits its own level and every
// more important one. Log and Highlight are never filtered.
//
// DefaultSettings and ConfigFromEnv read the initial level from the
// environment; settings built with NewSettings from a literal Config do not:
//
//	LOGGER_LEVEL=warn ./myapp
//
// # File Output
//
// File appends are best effort: each line opens, appends and closes the
// file in the background, and failures are dropped. Terminal output is never
// delayed by the file. Call Settings.Flush before exit to wait for appends.
//
// # Console Binding
//
// BindAsGlobalConsole makes a Logger the target of the package-level
// functions and of the standard library's log package.
package logger
