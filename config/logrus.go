package config

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // Green for 200 OK
	yellow = "\033[33m" // Yellow for 404/409
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

func PrintLogInfo(statusCode int, functionName string) {
	var logColor string

	switch statusCode {
	case fiber.StatusOK, fiber.StatusCreated:
		logColor = green
	case fiber.StatusNotFound, fiber.StatusConflict:
		logColor = yellow
	case fiber.StatusBadRequest, fiber.StatusBadGateway, fiber.StatusGatewayTimeout, fiber.StatusInternalServerError:
		logColor = red
	default:
		logColor = reset
	}

	logMsg := fmt.Sprintf("\n(%s) => Status: %s[%d] - %s%s\n\n\n", functionName, logColor, statusCode, http.StatusText(statusCode), reset)
	log.Info(logMsg)
}
