package logger

import (
	"fmt"
	"sync"
	"time"
)

// configuration :
// Provides a way to configure the way logs are displayed both in terms of
// level and in terms of the run producing them. This logger uses a display
// to the standard output as a logging strategy with some coloring based on
// the severity of the logs to display.
//
// The `AppName` describes a string for the name of the application using
// the logger.
//
// The `RunID` identifies the adjudication run (or example-command
// invocation) producing the logs, so that interleaved traces from two
// adjudications running in the same process (e.g. a batch of scenarios in
// a test) can still be told apart.
//
// The `MinLevel` is the minimum severity that will actually be printed;
// everything below it is dropped before it ever reaches the channel.
//
// The `Buffer` allows to specify the size of the buffer to handle log
// messages so that a burst of trace calls from deep inside a resolver
// guess/commit cycle does not block the adjudication itself.
type configuration struct {
	AppName  string
	RunID    string
	MinLevel Severity
	Buffer   int
}

// traceMessage :
// Describes a message to be enqueued by the logger. It contains all the
// needed information to be displayed: its severity, the module that
// produced it, and its content.
type traceMessage struct {
	level   Severity
	module  string
	content string
}

// StdLogger :
// Logger implementation that forwards messages received from the
// adjudicator to the standard output through a buffered channel, so that
// tracing a deeply recursive guess/commit cycle never blocks on I/O.
//
// The `config` holds the display settings for this logger.
//
// The `logChannel` receives trace messages before they are displayed.
//
// The `endChannel` requests termination of the active dispatch loop.
//
// The `closed` flag guards against posting to a channel after `Release`
// has been called.
//
// The `locker` protects `closed` from concurrent access.
//
// The `waiter` lets `Release` block until the last queued message has
// actually been printed.
type StdLogger struct {
	config     configuration
	logChannel chan traceMessage
	endChannel chan bool
	closed     bool
	locker     sync.Mutex
	waiter     sync.WaitGroup
}

// NewStdLogger :
// Used to create a new logger tagged with the given run identifier. The
// `minLevel` filters out any trace below the given severity; pass
// `Verbose` to see every guess, commit, cycle break and Szykman paradox
// the resolver produces.
//
// Returns the created logger.
func NewStdLogger(appName string, runID string, minLevel Severity) *StdLogger {
	log := &StdLogger{
		config: configuration{
			AppName:  appName,
			RunID:    runID,
			MinLevel: minLevel,
			Buffer:   500,
		},
		logChannel: make(chan traceMessage, 500),
		endChannel: make(chan bool),
	}

	log.waiter.Add(1)
	go log.performLogging()

	return log
}

// Release :
// Used to perform the stopping of the active loop meant to handle logging
// to the underlying device. It will block until the method actually does
// return to make sure that the last logs posted will be dumped.
func (log *StdLogger) Release() {
	log.locker.Lock()
	if log.closed {
		log.locker.Unlock()
		return
	}
	log.closed = true
	log.locker.Unlock()

	log.endChannel <- true
	close(log.logChannel)

	log.waiter.Wait()
}

// Trace :
// Used to perform the log of the input message with the specified level
// and module. The log message is not directly transmitted to the logging
// device but instead placed in the internal buffer of trace messages so
// that it can be processed by the active logger loop without blocking the
// caller (typically the resolver, mid-adjudication).
func (log *StdLogger) Trace(level Severity, module string, message string) {
	if level < log.config.MinLevel {
		return
	}

	log.locker.Lock()
	defer log.locker.Unlock()
	if log.closed {
		return
	}
	log.logChannel <- traceMessage{level, module, message}
}

// performLogging :
// Meant to be launched as a goroutine; regularly drains the trace channel
// and hands each message to `performSingleLog` until `Release` is called,
// then flushes whatever remains.
func (log *StdLogger) performLogging() {
	for {
		select {
		case <-log.endChannel:
			for trace := range log.logChannel {
				log.performSingleLog(trace)
			}
			log.waiter.Done()
			return
		case trace := <-log.logChannel:
			log.performSingleLog(trace)
		}
	}
}

// performSingleLog :
// Formats and prints a single trace message.
func (log *StdLogger) performSingleLog(trace traceMessage) {
	out := FormatWithBrackets(log.config.AppName, Magenta)
	out += " " + FormatWithBrackets(log.config.RunID, Magenta)
	out += " " + FormatWithNoBrackets(time.Now().Format("2006-01-02 15:04:05"), Magenta)
	out += " " + FormatWithBrackets(trace.module, Cyan)
	out += " " + trace.level.String()
	out += " " + trace.content

	fmt.Println(out)
}
