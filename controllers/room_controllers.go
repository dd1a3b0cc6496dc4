package controllers

import (
	"net/http"
	"strconv"

	"bookit/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) RoomController {
	return RoomController{Rooms: rooms}
}

// GetAllRooms godoc
// @Summary List rooms
// @Description Paginated room catalog, 4 rooms per page, filtered by keyword, category and guest capacity.
// @Tags rooms
// @Produce json
// @Param keyword query string false "Room name contains"
// @Param category query string false "King, Single or Twins"
// @Param guestCapacity query int false "Exact guest capacity"
// @Param page query int false "Page, starting at 1"
// @Router /rooms [get]
func (r RoomController) GetAllRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
	}
	if v := c.Query("guestCapacity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.GuestCapacity = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Page = n
		}
	}

	page, err := r.Rooms.ListRooms(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Rooms fetched successfully", "data": page})
}

// GetRoomDetail godoc
// @Summary Get a room with its reviews
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Router /rooms/{id} [get]
func (r RoomController) GetRoomDetail(c *gin.Context) {
	roomID, ok := parseID(c, c.Param("id"), "room id")
	if !ok {
		return
	}

	room, err := r.Rooms.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Room fetched successfully", "data": room})
}

// CreateRoom godoc
// @Summary Create a room, uploading its images
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body services.RoomInput true "Room"
// @Router /admin/rooms [post]
func (r RoomController) CreateRoom(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid input", "details": err.Error()})
		return
	}

	room, err := r.Rooms.CreateRoom(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Room created successfully", "data": room})
}

// UpdateRoom godoc
// @Summary Update a room; new images replace the old ones
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param room body services.RoomInput true "Room"
// @Router /admin/rooms/{id} [put]
func (r RoomController) UpdateRoom(c *gin.Context) {
	roomID, ok := parseID(c, c.Param("id"), "room id")
	if !ok {
		return
	}

	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid input", "details": err.Error()})
		return
	}

	room, err := r.Rooms.UpdateRoom(c.Request.Context(), roomID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Room updated successfully", "data": room})
}

// DeleteRoom godoc
// @Summary Delete a room with its reviews, bookings and images
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Router /admin/rooms/{id} [delete]
func (r RoomController) DeleteRoom(c *gin.Context) {
	roomID, ok := parseID(c, c.Param("id"), "room id")
	if !ok {
		return
	}

	if err := r.Rooms.DeleteRoom(c.Request.Context(), roomID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Room deleted successfully"})
}
