package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditya2671/portfolio/internal/contact"
)

// contactForm carries the form constraints: every field required, email well formed.
type contactForm struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}

func (f contactForm) message() contact.Message {
	return contact.Message{Name: f.Name, Email: f.Email, Message: f.Message}
}

// contactView is rendered by contact-form.html.
type contactView struct {
	Values  contactForm
	Outcome contact.Outcome
	Status  string
	Error   string
	Mailto  string
}

const constraintError = "Please enter your name, a valid email address and a message."

func viewFor(form contactForm, res contact.Result) contactView {
	if res.Sent() {
		// cleared fields
		return contactView{Outcome: res.Outcome, Status: res.Outcome.Status()}
	}
	status := res.Outcome.Status()
	if status == "" {
		status = "Opening your mail client..."
	}
	return contactView{
		Values:  form,
		Outcome: res.Outcome,
		Status:  status,
		Mailto:  res.Fallback.MailtoURL,
	}
}

func (s *server) submitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact-form.html", contactView{Values: form, Error: constraintError})
		return
	}

	res := s.submitter.Submit(c.Request.Context(), form.message())
	view := viewFor(form, res)
	if res.Sent() {
		c.HTML(http.StatusOK, "contact-form.html", view)
		return
	}

	if isHTMX(c) {
		c.Header("HX-Redirect", view.Mailto)
		c.HTML(http.StatusOK, "contact-form.html", view)
		return
	}
	c.Redirect(http.StatusSeeOther, view.Mailto)
}

type contactResponse struct {
	Outcome contact.Outcome        `json:"outcome"`
	Status  string                 `json:"status"`
	Reason  contact.FallbackReason `json:"reason,omitempty"`
	Mailto  string                 `json:"mailto,omitempty"`
}

func (s *server) submitContactJSON(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constraintError})
		return
	}

	res := s.submitter.Submit(c.Request.Context(), form.message())
	view := viewFor(form, res)
	resp := contactResponse{Outcome: view.Outcome, Status: view.Status, Mailto: view.Mailto}
	if res.Fallback != nil {
		resp.Reason = res.Fallback.Reason
	}
	c.JSON(http.StatusOK, resp)
}
