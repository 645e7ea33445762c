package delivery

import (
	"errors"
	"net/url"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"passenger/config"
	"passenger/domain"
)

// Canned messages, kept byte for byte: clients match on them.
const (
	msgDuplicateCPF   = "Passageiro de mesmo cpf já salvo na base :/"
	msgCreateFailure  = "Não foi possível salvar novo item :/"
	msgNotFound       = "Passageiro não encontrado na base :/"
	msgUpdateFailure  = "Não foi possível atualizar o passageiro :/"
	msgProcessFailure = "Não foi possível processar a requisição :/"
	msgBadBirthdate   = "Data de nascimento inválida, use o formato YYYY-MM-DDTHH:MM:SS"
	msgDeleted        = "Passageiro removido"
)

type passengerHandler struct {
	puc domain.PassengerUseCase
	log *logrus.Logger
}

func NewPassengerHandler(app *fiber.App, useCase domain.PassengerUseCase) {
	handler := &passengerHandler{
		puc: useCase,
		log: config.GetLogrusInstance(),
	}

	app.Post("/passageiro", handler.CreatePassenger)
	app.Get("/passageiros", handler.GetAllPassenger)
	app.Get("/passageiro", handler.GetPassengerByCPF)
	app.Put("/passageiro", handler.UpdatePassenger)
	app.Delete("/passageiro", handler.DeletePassenger)
	app.Post("/contato", handler.AddContact)
}

func presentPassenger(passenger *domain.Passenger) domain.PassengerView {
	contacts := make([]domain.ContactView, 0, len(passenger.Contacts))
	for _, contact := range passenger.Contacts {
		contacts = append(contacts, domain.ContactView{
			ID:       contact.ID,
			Telefone: contact.Telefone,
			Tipo:     contact.Tipo,
		})
	}

	return domain.PassengerView{
		ID:        passenger.ID,
		Nome:      passenger.Nome,
		CPF:       passenger.CPF,
		Birthdate: passenger.Birthdate.Format(domain.BirthdateLayout),
		Flight:    passenger.Flight,
		Contatos:  contacts,
	}
}

func (h *passengerHandler) CreatePassenger(c *fiber.Ctx) error {
	var req domain.CreatePassengerRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "CreatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgCreateFailure,
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "CreatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	birthdate, err := time.Parse(domain.BirthdateLayout, req.Birthdate)
	if err != nil {
		h.log.Warnf("Erro ao adicionar passageiro '%s', '%s': birthdate inválido '%s'", req.Nome, req.CPF, req.Birthdate)
		config.PrintLogInfo(fiber.StatusBadRequest, "CreatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgBadBirthdate,
		})
	}

	passenger := domain.Passenger{
		Nome:      req.Nome,
		CPF:       req.CPF,
		Birthdate: birthdate,
		Flight:    req.Flight,
	}

	if err := h.puc.CreatePassengerUC(c.Context(), &passenger); err != nil {
		if errors.Is(err, domain.ErrDuplicateCPF) {
			h.log.Warnf("Erro ao adicionar passageiro '%s', '%s': %s", passenger.Nome, passenger.CPF, msgDuplicateCPF)
			config.PrintLogInfo(fiber.StatusConflict, "CreatePassenger")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": msgDuplicateCPF,
			})
		}

		h.log.Warnf("Erro ao adicionar passageiro '%s', '%s': %v", passenger.Nome, passenger.CPF, err)
		config.PrintLogInfo(fiber.StatusBadRequest, "CreatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgCreateFailure,
		})
	}

	h.log.Debugf("Adicionado passageiro de nome e cpf: '%s', '%s'", passenger.Nome, passenger.CPF)
	config.PrintLogInfo(fiber.StatusOK, "CreatePassenger")
	return c.Status(fiber.StatusOK).JSON(presentPassenger(&passenger))
}

func (h *passengerHandler) GetAllPassenger(c *fiber.Ctx) error {
	passengers, err := h.puc.GetAllPassengerUC(c.Context())
	if err != nil {
		h.log.Warnf("Erro ao coletar passageiros: %v", err)
		config.PrintLogInfo(fiber.StatusInternalServerError, "GetAllPassenger")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": msgProcessFailure,
		})
	}

	views := make([]domain.PassengerView, 0, len(*passengers))
	for i := range *passengers {
		views = append(views, presentPassenger(&(*passengers)[i]))
	}

	h.log.Debugf("%d passageiros encontrados", len(views))
	config.PrintLogInfo(fiber.StatusOK, "GetAllPassenger")
	return c.Status(fiber.StatusOK).JSON(domain.PassengerListView{
		Passageiros: views,
	})
}

func (h *passengerHandler) GetPassengerByCPF(c *fiber.Ctx) error {
	cpf := c.Query("cpf")

	passenger, err := h.puc.GetPassengerByCPFUC(c.Context(), cpf)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warnf("Erro ao buscar passageiro '%s': %s", cpf, msgNotFound)
			config.PrintLogInfo(fiber.StatusNotFound, "GetPassengerByCPF")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": msgNotFound,
			})
		}

		config.PrintLogInfo(fiber.StatusInternalServerError, "GetPassengerByCPF")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": msgProcessFailure,
		})
	}

	h.log.Debugf("Passageiro encontrado: '%s'", passenger.CPF)
	config.PrintLogInfo(fiber.StatusOK, "GetPassengerByCPF")
	return c.Status(fiber.StatusOK).JSON(presentPassenger(passenger))
}

func (h *passengerHandler) UpdatePassenger(c *fiber.Ctx) error {
	var req domain.UpdatePassengerRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "UpdatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgUpdateFailure,
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "UpdatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	// The birthdate is validated here but the update only writes nome, cpf
	// and flight.
	if _, err := time.Parse(domain.BirthdateLayout, req.Birthdate); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "UpdatePassenger")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgBadBirthdate,
		})
	}

	passenger := domain.Passenger{
		ID:     req.ID,
		Nome:   req.Nome,
		CPF:    req.CPF,
		Flight: req.Flight,
	}

	updated, err := h.puc.UpdatePassengerUC(c.Context(), &passenger)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warnf("Erro ao atualizar passageiro #%d: %s", req.ID, msgNotFound)
			config.PrintLogInfo(fiber.StatusNotFound, "UpdatePassenger")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": msgNotFound,
			})
		}

		h.log.Warnf("Erro ao atualizar passageiro #%d: %v", req.ID, err)
		config.PrintLogInfo(fiber.StatusInternalServerError, "UpdatePassenger")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": msgUpdateFailure,
		})
	}

	h.log.Debugf("Atualizado passageiro #%d", updated.ID)
	config.PrintLogInfo(fiber.StatusOK, "UpdatePassenger")
	return c.Status(fiber.StatusOK).JSON(presentPassenger(updated))
}

func (h *passengerHandler) DeletePassenger(c *fiber.Ctx) error {
	// The router already decodes the query once; older clients send the cpf
	// encoded twice, so it gets unescaped twice more before the lookup.
	// PathUnescape keeps a literal '+' a '+'.
	cpf := c.Query("cpf")
	if decoded, err := url.PathUnescape(cpf); err == nil {
		cpf = decoded
	}
	if decoded, err := url.PathUnescape(cpf); err == nil {
		cpf = decoded
	}

	if err := h.puc.DeletePassengerByCPFUC(c.Context(), cpf); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warnf("Erro ao deletar passageiro #'%s': %s", cpf, msgNotFound)
			config.PrintLogInfo(fiber.StatusNotFound, "DeletePassenger")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": msgNotFound,
			})
		}

		h.log.Warnf("Erro ao deletar passageiro #'%s': %v", cpf, err)
		config.PrintLogInfo(fiber.StatusInternalServerError, "DeletePassenger")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": msgProcessFailure,
		})
	}

	h.log.Debugf("Deletado passageiro #%s", cpf)
	config.PrintLogInfo(fiber.StatusOK, "DeletePassenger")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": msgDeleted,
		"id":      cpf,
	})
}

func (h *passengerHandler) AddContact(c *fiber.Ctx) error {
	var req domain.AddContactRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "AddContact")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgCreateFailure,
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "AddContact")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	contact := domain.Contact{
		Telefone: req.Telefone,
		Tipo:     req.Tipo,
	}

	passenger, err := h.puc.AddContactUC(c.Context(), req.PassageiroID, &contact)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warnf("Erro ao adicionar contato ao passageiro '%d': %s", req.PassageiroID, msgNotFound)
			config.PrintLogInfo(fiber.StatusNotFound, "AddContact")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": msgNotFound,
			})
		}

		h.log.Warnf("Erro ao adicionar contato ao passageiro '%d': %v", req.PassageiroID, err)
		config.PrintLogInfo(fiber.StatusInternalServerError, "AddContact")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": msgProcessFailure,
		})
	}

	h.log.Debugf("Adicionado contato ao passageiro #%d", req.PassageiroID)
	config.PrintLogInfo(fiber.StatusOK, "AddContact")
	return c.Status(fiber.StatusOK).JSON(presentPassenger(passenger))
}
