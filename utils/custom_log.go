package utils

import "log"

const (
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiReset  = "\033[0m"
)

var _colorPrint = false

func SetColorPrint(enable bool) {
	_colorPrint = enable
}

func emit(color, level, format string, v ...interface{}) {
	if _colorPrint {
		log.Printf(color+level+" "+format+ansiReset+"\n", v...)
		return
	}
	log.Printf(level+" "+format+"\n", v...)
}

func LogInfo(format string, v ...interface{}) {
	emit(ansiGreen, "INFO", format, v...)
}

func LogWarn(format string, v ...interface{}) {
	emit(ansiYellow, "WARN", format, v...)
}

func LogErro(format string, v ...interface{}) {
	emit(ansiRed, "ERRO", format, v...)
}

func LogFatal(format string, v ...interface{}) {
	if _colorPrint {
		log.Fatalf(ansiRed+"FATAL "+format+ansiReset+"\n", v...)
		return
	}
	log.Fatalf("FATAL "+format+"\n", v...)
}
