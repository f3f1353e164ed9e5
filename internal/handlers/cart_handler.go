package handlers

import (
	"net/http"

	"shophub_backend/internal/middleware"
	"shophub_backend/internal/services"
	"shophub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*BaseHandler
	cartService services.CartService
}

func NewCartHandler(base *BaseHandler, cartService services.CartService) *CartHandler {
	return &CartHandler{
		BaseHandler: base,
		cartService: cartService,
	}
}

func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", h.GetCart)
		cart.POST("/add", h.AddItem)
		cart.PUT("/update/:id", h.UpdateItem)
		cart.DELETE("/remove/:id", h.RemoveItem)
		cart.DELETE("/clear", h.Clear)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	cart, err := h.cartService.GetCart(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddToCartRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.cartService.AddItem(db, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Added to cart",
	})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.cartService.UpdateItem(db, userID, c.Param("id"), req.Quantity); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.cartService.RemoveItem(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item removed",
	})
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.cartService.Clear(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
