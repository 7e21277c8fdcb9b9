package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cafesync/database"
	"cafesync/models"
	"cafesync/realtime"
	"cafesync/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type OrderController struct {
	notifier  realtime.Publisher
	logger    *zap.Logger
	summarize func(context.Context) (services.OrderSummary, error)
}

func NewOrderController(notifier realtime.Publisher, logger *zap.Logger) *OrderController {
	return &OrderController{
		notifier:  notifier,
		logger:    logger,
		summarize: services.TodayOrderSummary,
	}
}

type orderItemInput struct {
	Product  string  `json:"product" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
}

type createOrderInput struct {
	Items           []orderItemInput `json:"items"`
	PaymentMethod   string           `json:"paymentMethod"`
	TableID         string           `json:"tableId"`
	DiscountPercent float64          `json:"discountPercent"`
	TaxRate         float64          `json:"taxRate"`
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil || len(input.Items) == 0 {
		fail(c, http.StatusBadRequest, "No items provided")
		return
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		pid, err := primitive.ObjectIDFromHex(in.Product)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid product id")
			return
		}
		items = append(items, models.OrderItem{
			Product:  pid,
			Quantity: in.Quantity,
			Size:     in.Size,
			Price:    in.Price,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	customOrderID, err := services.NextOrderID(ctx, now)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}

	order := models.Order{
		ID:              primitive.NewObjectID(),
		CustomOrderID:   customOrderID,
		Items:           items,
		TotalPrice:      services.ComputeTotal(items),
		DiscountPercent: input.DiscountPercent,
		TaxRate:         input.TaxRate,
		Status:          models.StatusPending,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if input.TableID != "" {
		tid, err := primitive.ObjectIDFromHex(input.TableID)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid table id")
			return
		}
		order.Table = &tid
	}

	// Concurrent creations can race to the same customOrderID; the second
	// insert then fails the unique index and surfaces here as a 500.
	if _, err := database.OrderCollection.InsertOne(ctx, order); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	oc.publishSummary(ctx)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")
	orderID := c.Query("orderId")

	query := bson.M{}
	if status != "" && status != "all" {
		query["status"] = status
	}

	createdAt := bson.M{}
	if s := c.Query("startDate"); s != "" {
		start, err := parseDate(s)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid startDate")
			return
		}
		createdAt["$gte"] = start
	}
	if s := c.Query("endDate"); s != "" {
		end, err := parseDate(s)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid endDate")
			return
		}
		createdAt["$lte"] = end
	}
	if len(createdAt) > 0 {
		query["createdAt"] = createdAt
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.OrderCollection.Find(ctx, query, opts)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Partial id search happens in memory, over the already-fetched window.
	if orderID != "" {
		term := strings.ToLower(orderID)
		filtered := orders[:0]
		for _, o := range orders {
			if strings.HasPrefix(strings.ToLower(o.ID.Hex()), term) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	pageOrders, pagination := services.PaginateOrders(orders, page, limit)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       pageOrders,
		"pagination": pagination,
	})
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	if err := database.OrderCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order); err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

type updateOrderInput struct {
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	TableID       string `json:"tableId"`
}

// UpdateOrder changes status, payment method or table. Status transitions are
// deliberately unguarded: any status can move to any other. Line items and
// totalPrice are never touched here.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var input updateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"updatedAt": time.Now()}
	if input.Status != "" {
		update["status"] = input.Status
	}
	if input.PaymentMethod != "" {
		update["paymentMethod"] = input.PaymentMethod
	}
	if input.TableID != "" {
		tid, err := primitive.ObjectIDFromHex(input.TableID)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid table id")
			return
		}
		var table models.Table
		if err := database.TableCollection.FindOne(ctx, bson.M{"_id": tid}).Decode(&table); err != nil {
			fail(c, http.StatusNotFound, "Table not found")
			return
		}
		update["table"] = tid
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	err = database.OrderCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&order)
	if err != nil {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	oc.publishSummary(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.OrderCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	oc.publishSummary(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

func (oc *OrderController) GetTodaySummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := oc.summarize(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// publishSummary recomputes today's summary and pushes it to connected
// dashboards. Best effort: a failed recompute is logged, never surfaced.
func (oc *OrderController) publishSummary(ctx context.Context) {
	summary, err := oc.summarize(ctx)
	if err != nil {
		oc.logger.Error("recompute order summary", zap.Error(err))
		return
	}
	oc.notifier.Publish(realtime.EventOrderSummaryUpdate, summary)
}

// parseDate accepts RFC3339 timestamps and plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
