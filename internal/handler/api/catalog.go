package api

import (
	"net/http"

	reqdto "travelmate/internal/handler/dto/request"
	resdto "travelmate/internal/handler/dto/response"
	"travelmate/internal/usecase/commands"
	"travelmate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves flights, hotels, activities and deals.
type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Search flights
// @Description Case-insensitive match on origin or destination city
// @Tags flights
// @Accept json
// @Produce json
// @Param request body reqdto.FlightSearchRequest true "Search form"
// @Success 200 {array} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Router /api/flights/search [post]
func (h *CatalogHandler) SearchFlights(c *gin.Context) {
	var req reqdto.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid search parameters")
		return
	}
	flights, err := h.q.SearchFlights(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to search flights")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlights(flights))
}

// @Summary Get flight
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/flights/{id} [get]
func (h *CatalogHandler) GetFlight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := h.q.GetFlight(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get flight")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlight(f))
}

// @Summary Add flight
// @Tags flights
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFlightRequest true "Flight"
// @Success 201 {object} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Router /api/flights [post]
func (h *CatalogHandler) CreateFlight(c *gin.Context) {
	var req reqdto.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid flight data")
		return
	}
	f, err := h.cmds.CreateFlight(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create flight")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFlight(f))
}

// @Summary Search hotels
// @Description Case-insensitive match on hotel location
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.HotelSearchRequest true "Search form"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hotels/search [post]
func (h *CatalogHandler) SearchHotels(c *gin.Context) {
	var req reqdto.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid search parameters")
		return
	}
	hotels, err := h.q.SearchHotels(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to search hotels")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotels(hotels))
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hotel, err := h.q.GetHotel(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get hotel")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotel(hotel))
}

// @Summary Add hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hotels [post]
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid hotel data")
		return
	}
	hotel, err := h.cmds.CreateHotel(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create hotel")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHotel(hotel))
}

// @Summary Search activities
// @Description Match on location, optionally narrowed by type and price range
// @Tags activities
// @Accept json
// @Produce json
// @Param request body reqdto.ActivitySearchRequest true "Search form"
// @Success 200 {array} resdto.ActivityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/activities/search [post]
func (h *CatalogHandler) SearchActivities(c *gin.Context) {
	var req reqdto.ActivitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid search parameters")
		return
	}
	activities, err := h.q.SearchActivities(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to search activities")
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivities(activities))
}

// @Summary Get activity
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} resdto.ActivityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/activities/{id} [get]
func (h *CatalogHandler) GetActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.q.GetActivity(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get activity")
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivity(a))
}

// @Summary Add activity
// @Tags activities
// @Accept json
// @Produce json
// @Param request body reqdto.CreateActivityRequest true "Activity"
// @Success 201 {object} resdto.ActivityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/activities [post]
func (h *CatalogHandler) CreateActivity(c *gin.Context) {
	var req reqdto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid activity data")
		return
	}
	a, err := h.cmds.CreateActivity(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create activity")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromActivity(a))
}

// @Summary List deals
// @Description All deals, or only those of one type
// @Tags deals
// @Produce json
// @Param type query string false "flights, hotels, activities, packages or all"
// @Success 200 {array} resdto.DealResponse
// @Router /api/deals [get]
func (h *CatalogHandler) ListDeals(c *gin.Context) {
	deals, err := h.q.ListDeals(c.Request.Context(), c.Query("type"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get deals")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeals(deals))
}

// @Summary Get deal
// @Tags deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id} [get]
func (h *CatalogHandler) GetDeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.q.GetDeal(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get deal")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeal(d))
}

// @Summary Add deal
// @Tags deals
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDealRequest true "Deal"
// @Success 201 {object} resdto.DealResponse
// @Failure 400 {object} httperr.Response
// @Router /api/deals [post]
func (h *CatalogHandler) CreateDeal(c *gin.Context) {
	var req reqdto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err, "Invalid deal data")
		return
	}
	d, err := h.cmds.CreateDeal(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create deal")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDeal(d))
}
