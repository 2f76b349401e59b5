package server

import (
	"io"
	"strconv"
	"strings"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/service"

	"github.com/gofiber/fiber/v2"
)

// maxUploadBytes caps post image uploads at 5 MiB.
const maxUploadBytes = 5 << 20

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts. Accepts JSON or a multipart form
// with an optional image file.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	in := service.CreatePostInput{UserID: userID}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		in.Text = c.FormValue("text")
		if groupStr := c.FormValue("group_id"); groupStr != "" {
			groupID, err := strconv.ParseUint(groupStr, 10, 32)
			if err != nil {
				return respondError(c, models.NewFieldValidationError("group_id", "Invalid group ID"))
			}
			gid := uint(groupID)
			in.GroupID = &gid
		}
		image, err := readFormImage(c)
		if err != nil {
			return respondError(c, err)
		}
		in.Image = image
	} else {
		var req struct {
			Text    string `json:"text"`
			GroupID *uint  `json:"group_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, models.NewValidationError("Invalid request body"))
		}
		in.Text = req.Text
		in.GroupID = req.GroupID
	}

	post, err := s.postService.CreatePost(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	in := service.UpdatePostInput{UserID: userID, PostID: id}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		in.Text = c.FormValue("text")
		switch groupStr := c.FormValue("group_id"); groupStr {
		case "":
		case "0":
			in.ClearGroup = true
		default:
			groupID, err := strconv.ParseUint(groupStr, 10, 32)
			if err != nil {
				return respondError(c, models.NewFieldValidationError("group_id", "Invalid group ID"))
			}
			gid := uint(groupID)
			in.GroupID = &gid
		}
		image, err := readFormImage(c)
		if err != nil {
			return respondError(c, err)
		}
		in.Image = image
	} else {
		var req struct {
			Text       string `json:"text"`
			GroupID    *uint  `json:"group_id"`
			ClearGroup bool   `json:"clear_group"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, models.NewValidationError("Invalid request body"))
		}
		in.Text = req.Text
		in.GroupID = req.GroupID
		in.ClearGroup = req.ClearGroup
	}

	post, err := s.postService.UpdatePost(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: id,
	}); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// readFormImage reads the optional "image" multipart file. A missing
// file is not an error.
func readFormImage(c *fiber.Ctx) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	if fileHeader.Size > maxUploadBytes {
		return nil, models.NewFieldValidationError("image", "Image too large (max 5 MiB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(content) > maxUploadBytes {
		return nil, models.NewFieldValidationError("image", "Image too large (max 5 MiB)")
	}
	return content, nil
}
