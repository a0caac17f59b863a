package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// crudService forma común de los casos de uso CRUD paginados.
type crudService[C, U, R, L any] interface {
	Create(ctx context.Context, in C) (*R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	List(ctx context.Context, page dto.PageRequest) (*L, error)
	Delete(ctx context.Context, id string) error
}

// CRUDHandler handler genérico para categorías, clientes, proveedores, catálogos y notificaciones.
type CRUDHandler[C, U, R, L any] struct {
	svc crudService[C, U, R, L]
}

// NewCRUDHandler construye el handler sobre el caso de uso.
func NewCRUDHandler[C, U, R, L any](svc crudService[C, U, R, L]) *CRUDHandler[C, U, R, L] {
	return &CRUDHandler[C, U, R, L]{svc: svc}
}

// Mount registra GET /, GET /:id, POST /, PUT /:id y DELETE /:id.
func (h *CRUDHandler[C, U, R, L]) Mount(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *CRUDHandler[C, U, R, L]) Create(c *fiber.Ctx) error {
	var in C
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) Update(c *fiber.Ctx) error {
	var in U
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CRUDHandler[C, U, R, L]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
