package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/serializer"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

type FundingHandler struct {
	svc service.FundingService
}

func NewFundingHandler(svc service.FundingService) *FundingHandler {
	return &FundingHandler{svc: svc}
}

func (h *FundingHandler) CreateFunding(c *gin.Context) {
	var req service.CreateFundingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	funding, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, funding)
}

func (h *FundingHandler) GetFunding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	funding, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, funding)
}

func (h *FundingHandler) UpdateFunding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.UpdateFundingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	funding, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, funding)
}

func (h *FundingHandler) DeleteFunding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FundingHandler) ListFundings(c *gin.Context) {
	f := repo.FundingFilter{}

	var err error
	if f.ProjectID, err = optUUID(c, "projectId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	if raw := c.Query("fiscalYear"); raw != "" {
		f.FiscalYear = &raw
	}
	if raw := c.Query("status"); raw != "" {
		status := model.FundingStatus(raw)
		f.Status = &status
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	fundings, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, fundings)
}

// RecordTransaction appends a ledger row against a funding source.
func (h *FundingHandler) RecordTransaction(c *gin.Context) {
	fundingID, ok := pathID(c)
	if !ok {
		return
	}

	var req service.RecordTransactionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req.FundingID = fundingID

	tx, err := h.svc.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *FundingHandler) ListTransactions(c *gin.Context) {
	f := repo.TransactionFilter{}

	var err error
	if f.FundingID, err = optUUID(c, "fundingId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid fundingId", err))
		return
	}
	if f.ProjectID, err = optUUID(c, "projectId"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid projectId", err))
		return
	}
	if raw := c.Query("type"); raw != "" {
		t := model.TransactionType(raw)
		f.Type = &t
	}
	if f.Range, err = dateRange(c); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid date filter", err))
		return
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))

	txs, err := h.svc.ListTransactions(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}
