// Package cli contains the command line interface for confix.
//
// # Usage
//
// The CLI reads confix language sources from files or stdin and dispatches
// each line through a [lang.Session]:
//
//	# Evaluate a source and print its document as XML (default command)
//	confix parse -f config.cfx
//
//	# Serialize as JSON or YAML instead
//	confix parse --format=json -f config.cfx
//
//	# Evaluate one postfix expression against a source's declarations
//	confix eval '3 4 +' -f config.cfx
//
//	# Canonical reformatting of declarations
//	confix fmt -f config.cfx
//
//	# Interactive session with history and completion
//	confix repl -f config.cfx
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o confix .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/confix/pprof)
package cli
