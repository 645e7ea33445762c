package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"passenger/config"
	"passenger/domain"
)

type verificationHandler struct {
	vuc domain.VerificationUseCase
	log *logrus.Logger
}

func NewVerificationHandler(app *fiber.App, useCase domain.VerificationUseCase) {
	handler := &verificationHandler{
		vuc: useCase,
		log: config.GetLogrusInstance(),
	}

	app.Get("/external-data", handler.GetExternalData)
}

func (h *verificationHandler) GetExternalData(c *fiber.Ctx) error {
	cpf := c.Query("cpf")
	birthdate := c.Query("birthdate")

	if cpf == "" {
		config.PrintLogInfo(fiber.StatusBadRequest, "GetExternalData")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'cpf' query parameter",
		})
	}

	if birthdate == "" {
		config.PrintLogInfo(fiber.StatusBadRequest, "GetExternalData")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'birthdate' query parameter",
		})
	}

	result, err := h.vuc.VerifyCPFUC(c.Context(), cpf, birthdate)
	if err != nil {
		var upstream *domain.UpstreamError

		switch {
		case errors.Is(err, domain.ErrVerifierTimeout):
			h.log.Warnf("Consulta externa para cpf '%s' expirou", cpf)
			config.PrintLogInfo(fiber.StatusGatewayTimeout, "GetExternalData")
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"error": "External API request timed out",
			})

		case errors.As(err, &upstream):
			h.log.Warnf("Consulta externa para cpf '%s' falhou: %v", cpf, upstream)
			config.PrintLogInfo(fiber.StatusBadGateway, "GetExternalData")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "External API error: " + upstream.Error(),
			})

		default:
			h.log.Warnf("Consulta externa para cpf '%s' falhou: %v", cpf, err)
			config.PrintLogInfo(fiber.StatusInternalServerError, "GetExternalData")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected error: " + err.Error(),
			})
		}
	}

	config.PrintLogInfo(fiber.StatusOK, "GetExternalData")
	return c.Status(fiber.StatusOK).JSON(result)
}
