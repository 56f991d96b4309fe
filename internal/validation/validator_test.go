package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/backend/internal/model"
)

func validContact() model.ContactInput {
	return model.ContactInput{Name: "A", Email: "a@b.com", Subject: "S", Message: "M"}
}

func TestContact_Valid(t *testing.T) {
	assert.NoError(t, New().Contact(validContact()))
}

func TestContact_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ContactInput)
		want   []string
	}{
		{"no name", func(in *model.ContactInput) { in.Name = "" }, []string{"name"}},
		{"blank email", func(in *model.ContactInput) { in.Email = "   " }, []string{"email"}},
		{"tab subject", func(in *model.ContactInput) { in.Subject = "\t\n" }, []string{"subject"}},
		{"no message", func(in *model.ContactInput) { in.Message = "" }, []string{"message"}},
		{"everything", func(in *model.ContactInput) { *in = model.ContactInput{} }, []string{"name", "email", "subject", "message"}},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validContact()
			tt.mutate(&in)

			err := v.Contact(in)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, MsgContactRequired, verr.Message)
			assert.Equal(t, tt.want, verr.Fields)
			assert.Equal(t, tt.want, v.MissingContactFields(in))
		})
	}
}

func TestContact_MissingWinsOverMalformedEmail(t *testing.T) {
	in := model.ContactInput{Email: "not-an-email", Subject: "S", Message: "M"}

	var verr *Error
	require.ErrorAs(t, New().Contact(in), &verr)
	assert.Equal(t, MsgContactRequired, verr.Message)
	assert.Equal(t, []string{"name"}, verr.Fields)
}

func TestContact_InvalidEmail(t *testing.T) {
	for _, email := range []string{
		"plainaddress",
		"no-at.example.com",
		"user@nodot",
		"user@@example.com",
		"user name@example.com",
		"user@example.",
		"@example.com",
	} {
		t.Run(email, func(t *testing.T) {
			in := validContact()
			in.Email = email

			var verr *Error
			require.ErrorAs(t, New().Contact(in), &verr)
			assert.Equal(t, MsgInvalidEmail, verr.Message)
			assert.Equal(t, []string{"email"}, verr.Fields)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.True(t, IsValidEmail("a@b.c.d"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("a@b"))
}

func TestProject_RequiredFields(t *testing.T) {
	v := New()

	err := v.Project(model.ProjectInput{Title: "t", Description: "d"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgProjectRequired, verr.Message)
	assert.Equal(t, []string{"technologies"}, verr.Fields)

	// An empty list counts as present.
	assert.NoError(t, v.Project(model.ProjectInput{Title: "t", Description: "d", Technologies: []string{}}))
}

func TestExperience_RequiredFields(t *testing.T) {
	v := New()
	in := model.ExperienceInput{
		Title:       "Engineer",
		Company:     "Acme",
		Location:    "Remote",
		StartDate:   "2021-01",
		EndDate:     "Present",
		Description: "Built things",
	}
	assert.NoError(t, v.Experience(in))

	in.Company = " "
	in.EndDate = ""
	var verr *Error
	require.ErrorAs(t, v.Experience(in), &verr)
	assert.Equal(t, MsgExperienceRequired, verr.Message)
	assert.Equal(t, []string{"company", "end_date"}, verr.Fields)
}

func TestError_Message(t *testing.T) {
	err := &Error{Message: MsgContactRequired, Fields: []string{"name", "email"}}
	assert.True(t, strings.HasSuffix(err.Error(), "name, email"))
	assert.Equal(t, MsgInvalidEmail, (&Error{Message: MsgInvalidEmail}).Error())
}

func TestValidator_ProjectPatch(t *testing.T) {
	v := New()
	title := "New title"
	blank := "   "

	assert.NoError(t, v.ProjectPatch(model.ProjectPatch{}))
	assert.NoError(t, v.ProjectPatch(model.ProjectPatch{Title: &title}))

	err := v.ProjectPatch(model.ProjectPatch{Title: &title, Description: &blank})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgBlankUpdate, verr.Message)
	assert.Equal(t, []string{"description"}, verr.Fields)
}

func TestValidator_ExperiencePatch(t *testing.T) {
	v := New()
	empty := ""
	assert.NoError(t, v.ExperiencePatch(model.ExperiencePatch{}))

	err := v.ExperiencePatch(model.ExperiencePatch{Company: &empty})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"company"}, verr.Fields)
}
