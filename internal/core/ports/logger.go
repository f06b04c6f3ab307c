package ports

/*
Logger is the diagnostic sink injected into services. *logrus.Logger
satisfies it directly.
*/
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
