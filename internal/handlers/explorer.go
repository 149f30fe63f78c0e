package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type ExplorerHandler struct {
	DB *gorm.DB
}

func NewExplorerHandler(db *gorm.DB) *ExplorerHandler {
	return &ExplorerHandler{DB: db}
}

// List returns one tree level: ?parent_id= selects a folder's children, no
// parameter selects the roots.
func (h *ExplorerHandler) List(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	raw := strings.TrimSpace(c.Query("parent_id"))
	if raw == "" {
		nodes, err := scope.ListFileNodes(nil)
		if err != nil {
			return writeStoreError(c, err, "failed listing files")
		}
		return utils.Success(c, fiber.StatusOK, nodes)
	}

	id, ok := store.ResolveID(raw)
	if !ok {
		return utils.Error(c, fiber.StatusBadRequest, "invalid parent_id")
	}
	nodes, err := scope.ListFileNodes(&id)
	if err != nil {
		return writeStoreError(c, err, "failed listing files")
	}
	return utils.Success(c, fiber.StatusOK, nodes)
}

type createFileNodeRequest struct {
	ParentID *string `json:"parent_id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Content  string  `json:"content"`
}

func (h *ExplorerHandler) Create(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req createFileNodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return utils.Error(c, fiber.StatusBadRequest, "name is required")
	}
	kind := models.NodeKind(strings.ToLower(strings.TrimSpace(req.Type)))
	if !kind.Valid() {
		return utils.Error(c, fiber.StatusBadRequest, "type must be file or folder")
	}

	node := models.FileNode{Name: req.Name, Kind: kind}
	if kind == models.NodeKindFile {
		node.Content = req.Content
	}
	if req.ParentID != nil && strings.TrimSpace(*req.ParentID) != "" {
		parentID, ok := store.ResolveID(*req.ParentID)
		if !ok {
			return utils.Error(c, fiber.StatusBadRequest, "invalid parent_id")
		}
		node.ParentID = &parentID
	}

	if err := scope.CreateFileNode(&node); err != nil {
		if err == store.ErrNotFound {
			return utils.Error(c, fiber.StatusBadRequest, "parent folder not found")
		}
		return writeStoreError(c, err, "failed creating file")
	}
	return utils.Success(c, fiber.StatusCreated, node)
}

type updateFileNodeRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

func (h *ExplorerHandler) Update(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req updateFileNodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	nodeID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	node, err := scope.GetFileNode(nodeID)
	if err != nil {
		return writeStoreError(c, err, "failed loading file")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return utils.Error(c, fiber.StatusBadRequest, "name must not be empty")
		}
		node.Name = name
	}
	if req.Content != nil {
		if node.Kind != models.NodeKindFile {
			return utils.Error(c, fiber.StatusBadRequest, "folders have no content")
		}
		node.Content = *req.Content
	}

	if err := scope.SaveFileNode(&node); err != nil {
		return writeStoreError(c, err, "failed updating file")
	}
	return utils.Success(c, fiber.StatusOK, node)
}

func (h *ExplorerHandler) Delete(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	nodeID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	if err := scope.DeleteFileNode(nodeID); err != nil {
		return writeStoreError(c, err, "failed deleting file")
	}
	return ack(c)
}
