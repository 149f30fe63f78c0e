package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type FinanceHandler struct {
	DB *gorm.DB
}

func NewFinanceHandler(db *gorm.DB) *FinanceHandler {
	return &FinanceHandler{DB: db}
}

func (h *FinanceHandler) List(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	txns, err := scope.ListTransactions()
	if err != nil {
		return writeStoreError(c, err, "failed listing transactions")
	}
	return utils.Success(c, fiber.StatusOK, txns)
}

type createTransactionRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"`
}

func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req createTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return utils.Error(c, fiber.StatusBadRequest, "description is required")
	}
	if req.Amount == nil {
		return utils.Error(c, fiber.StatusBadRequest, "amount is required")
	}
	txnType := models.TransactionType(strings.ToLower(strings.TrimSpace(req.Type)))
	if !txnType.Valid() {
		return utils.Error(c, fiber.StatusBadRequest, "type must be income or expense")
	}

	txn := models.Transaction{
		Description: req.Description,
		Amount:      *req.Amount,
		Type:        txnType,
	}
	if err := scope.CreateTransaction(&txn); err != nil {
		return writeStoreError(c, err, "failed creating transaction")
	}
	return utils.Success(c, fiber.StatusCreated, txn)
}

func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	txnID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	if err := scope.DeleteTransaction(txnID); err != nil {
		return writeStoreError(c, err, "failed deleting transaction")
	}
	return ack(c)
}
