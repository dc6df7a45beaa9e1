package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/marketingapi/internal/server/http/dto"
)

// CustomerHandler exposes the customer contact list.
type CustomerHandler struct {
	facade CustomerFacade
}

func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.facade.AddCustomer(c.Request.Context(), req.Model())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCustomerResponse(*customer))
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerList(customers))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(*customer))
}

func (h *CustomerHandler) GetByEmail(c *gin.Context) {
	customer, err := h.facade.CustomerByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponse(*customer))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) DeleteByEmail(c *gin.Context) {
	if err := h.facade.DeleteCustomerByEmail(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
