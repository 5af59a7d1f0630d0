package handlers

import (
	"genrebox/internal/app"
	genreController "genrebox/internal/controllers/genres"
	"genrebox/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type GenreHandler struct {
	Handler
	genreController genreController.GenreControllerInterface
}

func NewGenreHandler(app app.App, router fiber.Router) *GenreHandler {
	log := logger.New("handlers").File("genre_handler")
	return &GenreHandler{
		genreController: app.GenreController,
		Handler: Handler{
			log:    log,
			router: router,
		},
	}
}

func (h *GenreHandler) Register() {
	genres := h.router.Group("/genres")

	genres.Get("/", h.listGenres)
	genres.Post("/", h.createGenre)
	genres.Delete("/", h.bulkDeleteGenres)
	genres.Get("/:id", h.getGenre)
	genres.Put("/:id", h.replaceGenre)
	genres.Patch("/:id", h.patchGenre)
	genres.Delete("/:id", h.deleteGenre)
}

func (h *GenreHandler) listGenres(c *fiber.Ctx) error {
	params := genreController.ListParams{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}

	genres, err := h.genreController.List(c.UserContext(), params)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    genres,
		"total":   len(genres),
		"message": "Genres retrieved successfully",
	})
}

func (h *GenreHandler) getGenre(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.invalidID(c)
	}

	genre, err := h.genreController.Get(c.UserContext(), id)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    genre,
		"message": "Genre retrieved successfully",
	})
}

func (h *GenreHandler) createGenre(c *fiber.Ctx) error {
	var req models.CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	genre, err := h.genreController.Create(c.UserContext(), req)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    genre,
		"message": "Genre created successfully",
	})
}

func (h *GenreHandler) replaceGenre(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.invalidID(c)
	}

	var req models.ReplaceGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	genre, err := h.genreController.Replace(c.UserContext(), id, req)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    genre,
		"message": "Genre updated successfully",
	})
}

func (h *GenreHandler) patchGenre(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.invalidID(c)
	}

	var req models.PatchGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	genre, err := h.genreController.Patch(c.UserContext(), id, req)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    genre,
		"message": "Genre updated successfully",
	})
}

func (h *GenreHandler) deleteGenre(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.invalidID(c)
	}

	genre, err := h.genreController.Delete(c.UserContext(), id)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    genre,
		"message": "Genre deleted successfully",
	})
}

func (h *GenreHandler) bulkDeleteGenres(c *fiber.Ctx) error {
	var req models.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	result, err := h.genreController.BulkDelete(c.UserContext(), req)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"message": "Bulk delete completed",
	})
}

// errorResponse translates controller errors into the response envelope.
// Validation failures carry a per-field errors object alongside the joined
// message.
func (h *GenreHandler) errorResponse(c *fiber.Ctx, err error) error {
	status := genreController.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		h.log.Er("unexpected genre handler error", err, "path", c.Path())
		return fiber.ErrInternalServerError
	}

	body := fiber.Map{
		"success": false,
		"message": err.Error(),
	}
	if details := genreController.ValidationDetails(err); details != nil {
		body["errors"] = details
	}

	return c.Status(status).JSON(body)
}

func (h *GenreHandler) invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "invalid genre id",
	})
}

func (h *GenreHandler) invalidBody(c *fiber.Ctx, err error) error {
	h.log.Warn("failed to parse request body", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "invalid request body",
	})
}
