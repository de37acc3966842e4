package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danandika/mhs-api/internal/app/models/dto"
	"github.com/danandika/mhs-api/internal/app/services"
	"github.com/danandika/mhs-api/internal/middleware"
)

// StudentController handles the student record endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// recordID reads the record id from the path, falling back to the query
// string for the legacy client that sends ?id=.
func recordID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Query("id")
}

// Create handles student record creation
// @Summary Create a student record
// @Description Creates a new student record and issues an access token bound to it
// @Tags mhs
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student record fields"
// @Success 201 {object} dto.Envelope "Record created, access_token set"
// @Failure 400 {object} dto.Envelope "Malformed request body"
// @Failure 409 {object} dto.Envelope "Record already exists, data holds the existing record"
// @Failure 500 {object} dto.Envelope "Internal server error"
// @Router /mhs/create [post]
func (ctl *StudentController) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(http.StatusBadRequest, c.Request.Method, "invalid request body"))
		return
	}

	student, token, err := ctl.studentService.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.
		NewSuccess(http.StatusCreated, c.Request.Method, "student record created").
		WithData(student).
		WithToken(token))
}

// List handles listing all student records
// @Summary List student records
// @Description Returns every student record, unpaginated
// @Tags mhs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope "Records retrieved"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 500 {object} dto.Envelope "Internal server error"
// @Router /mhs/results [get]
func (ctl *StudentController) List(c *gin.Context) {
	students, err := ctl.studentService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.
		NewSuccess(http.StatusOK, c.Request.Method, "student records retrieved").
		WithData(students))
}

// Get handles fetching a single student record
// @Summary Get a student record
// @Description Returns the student record with the given identifier
// @Tags mhs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id (hex)"
// @Success 200 {object} dto.Envelope "Record retrieved"
// @Failure 400 {object} dto.Envelope "Malformed record id"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 404 {object} dto.Envelope "Record not found"
// @Router /mhs/result/{id} [get]
func (ctl *StudentController) Get(c *gin.Context) {
	student, err := ctl.studentService.Get(c.Request.Context(), recordID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.
		NewSuccess(http.StatusOK, c.Request.Method, "student record retrieved").
		WithData(student))
}

// Update handles partial field replacement on one student record
// @Summary Update a student record
// @Description Replaces only the named fields on the record with the given identifier
// @Tags mhs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id (hex)"
// @Param request body dto.UpdateStudentRequest true "Fields to replace"
// @Success 200 {object} dto.Envelope "Record updated"
// @Failure 400 {object} dto.Envelope "Malformed record id or body"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 404 {object} dto.Envelope "Record not found"
// @Router /mhs/update/{id} [put]
func (ctl *StudentController) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(http.StatusBadRequest, c.Request.Method, "invalid request body"))
		return
	}

	student, err := ctl.studentService.Update(c.Request.Context(), recordID(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.
		NewSuccess(http.StatusOK, c.Request.Method, "student record updated").
		WithData(student))
}

// Delete handles removal of one student record
// @Summary Delete a student record
// @Description Removes the record with the given identifier and returns it
// @Tags mhs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record id (hex)"
// @Success 200 {object} dto.Envelope "Record deleted"
// @Failure 400 {object} dto.Envelope "Malformed record id"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Failure 404 {object} dto.Envelope "Record not found"
// @Router /mhs/delete/{id} [delete]
func (ctl *StudentController) Delete(c *gin.Context) {
	student, err := ctl.studentService.Delete(c.Request.Context(), recordID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.
		NewSuccess(http.StatusOK, c.Request.Method, "student record deleted").
		WithData(student))
}
