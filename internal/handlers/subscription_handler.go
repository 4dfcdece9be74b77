package handlers

import (
	"fmt"
	"net/http"
	"time"

	"gastropass_backend/internal/middleware"
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/services"
	"gastropass_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subscription := rg.Group("/subscription")
	subscription.Use(middleware.AuthMiddleware())
	{
		subscription.GET("", h.Info)
		subscription.POST("/subscribe", h.Subscribe)
		subscription.GET("/check-status", h.CheckStatus)
		subscription.GET("/payments", h.PaymentHistory)
	}

	admin := rg.Group("/admin/payments")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("", h.ListPayments)
		admin.GET("/export", h.ExportPayments)
		admin.POST("/:id/approve", h.ApprovePayment)
		admin.POST("/:id/cancel", h.CancelPayment)
	}
}

func (h *SubscriptionHandler) Info(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.subscriptionService.Info(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.subscriptionService.Subscribe(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *SubscriptionHandler) CheckStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.subscriptionService.CheckStatus(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SubscriptionHandler) PaymentHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.subscriptionService.PaymentHistory(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SubscriptionHandler) ListPayments(c *gin.Context) {
	response, err := h.subscriptionService.ListPayments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SubscriptionHandler) ApprovePayment(c *gin.Context) {
	id, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.subscriptionService.ApprovePayment(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *SubscriptionHandler) CancelPayment(c *gin.Context) {
	id, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.subscriptionService.CancelPayment(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ExportPayments streams the full payment ledger as a spreadsheet.
func (h *SubscriptionHandler) ExportPayments(c *gin.Context) {
	response, err := h.subscriptionService.ListPayments()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Pagamentos"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"No", "Data", "Usuário", "Descrição", "Valor (R$)", "Status", "Plano"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	styleHeader, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#B91C1C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetCellStyle(sheetName, "A1", "G1", styleHeader)

	stylePaid, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#10B981"}})
	styleCancelled, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#EF4444"}})

	row := 2
	for i, p := range response.Payments {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.UserID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), string(p.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), p.PlanID)

		switch p.Status {
		case models.PaymentStatusPaid:
			f.SetCellStyle(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), stylePaid)
		case models.PaymentStatusCancelled:
			f.SetCellStyle(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), styleCancelled)
		}

		row++
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 38)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "F", 14)
	f.SetColWidth(sheetName, "G", "G", 14)

	fileName := fmt.Sprintf("pagamentos_%s.xlsx", time.Now().Format("20060102"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate spreadsheet"})
	}
}
