package logging

// MockLogger captures log entries for verification in tests. Derived
// loggers from WithError/WithField(s) record into the logger they were
// derived from, so assertions on the original see every entry.
type MockLogger struct {
	Entries       []LogEntry
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) target() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := make([]Field, 0, len(m.pendingFields)+len(fields))
	allFields = append(allFields, m.pendingFields...)
	allFields = append(allFields, fields...)

	t := m.target()
	t.Entries = append(t.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry without exiting, so tests can assert on it.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.target(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := make([]Field, 0, len(m.pendingFields)+len(fields))
	allFields = append(allFields, m.pendingFields...)
	allFields = append(allFields, fields...)
	return &MockLogger{
		root:          m.target(),
		pendingError:  m.pendingError,
		pendingFields: allFields,
	}
}

// HasEntry reports whether an entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.target().Entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
