package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeController serves the static HTML pages
type HomeController struct{}

// NewHomeController creates a new HomeController
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Home renders the landing page
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "home view"
// @Router / [get]
func (ctl *HomeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Student Record Service",
	})
}

// About renders the about page
// @Summary About page
// @Tags pages
// @Produce html
// @Success 200 {string} string "about view"
// @Router /about [get]
func (ctl *HomeController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title": "About",
	})
}
