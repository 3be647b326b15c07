package handlers

import (
	"errors"
	"net/http"

	"travelhub/services/reservation"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
)

// CreateReservation books a generic service for the authenticated customer.
func CreateReservation(svc reservation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input reservation.CreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "invalid reservation payload: "+err.Error())
			return
		}

		res, err := svc.Create(c.Request.Context(), actorID(c), input)
		if err != nil {
			switch {
			case errors.Is(err, reservation.ErrServiceNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "service not found")
			case errors.Is(err, reservation.ErrServiceNotBookable):
				utils.JSONError(c, http.StatusConflict, "invalid_transition", "service is not accepting bookings")
			case errors.Is(err, reservation.ErrCustomerNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "customer account not found")
			case errors.Is(err, reservation.ErrInvalidPeriod):
				utils.JSONError(c, http.StatusBadRequest, "validation_failed", "checkout must not be before checkin")
			default:
				utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to create reservation")
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": res})
	}
}

// CreateTourBooking books a tour for the authenticated customer.
func CreateTourBooking(svc reservation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input reservation.CreateTourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "validation_failed", "invalid tour booking payload: "+err.Error())
			return
		}

		book, err := svc.CreateTourBooking(c.Request.Context(), actorID(c), input)
		if err != nil {
			switch {
			case errors.Is(err, reservation.ErrTourNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "tour not found")
			case errors.Is(err, reservation.ErrCustomerNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "customer account not found")
			default:
				utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to create tour booking")
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": book})
	}
}

// GetReservation returns one generic reservation to either of its parties.
func GetReservation(svc reservation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Get(c.Request.Context(), c.Param("id"), actorID(c))
		if err != nil {
			switch {
			case errors.Is(err, reservation.ErrReservationNotFound):
				utils.JSONError(c, http.StatusNotFound, "not_found", "reservation not found")
			case errors.Is(err, reservation.ErrForbidden):
				utils.JSONError(c, http.StatusForbidden, "forbidden", "you are not a party to this reservation")
			default:
				utils.JSONError(c, http.StatusInternalServerError, "dependency_unavailable", "failed to load reservation")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
	}
}
