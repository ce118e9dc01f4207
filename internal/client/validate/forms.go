package validate

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/sessionview/internal/client/models"
)

type RegisterForm struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that every field is filled, then the email shape.
func (f RegisterForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.UserName, validation.Required),
		validation.Field(&f.Email, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
	if err != nil {
		return alert(MsgRequiredFields, err)
	}
	return Email(f.Email)
}

func (f RegisterForm) Request() models.RegisterRequest {
	return models.RegisterRequest{UserName: f.UserName, Email: f.Email, Password: f.Password}
}

type SignInForm struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

func (f SignInForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.UserName, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
	if err != nil {
		return alert(MsgRequiredFields, err)
	}
	return nil
}

func (f SignInForm) Request() models.SignInRequest {
	return models.SignInRequest{UserName: f.UserName, Password: f.Password}
}

// ProfileForm mirrors the profile editor. A field is only checked, and only
// sent, while its editor is active.
type ProfileForm struct {
	NameActive     bool
	UserName       string
	EmailActive    bool
	Email          string
	PasswordActive bool
	Password       string
	Confirm        string
}

func (f ProfileForm) Validate() error {
	if f.Patch().Empty() {
		return alert(MsgNothingToApply, nil)
	}

	if f.NameActive {
		if err := Required(map[string]string{"user_name": f.UserName}); err != nil {
			return err
		}
	}

	if f.EmailActive {
		if err := Email(f.Email); err != nil {
			return err
		}
	}

	if f.PasswordActive {
		if err := Required(map[string]string{"password": f.Password, "confirm": f.Confirm}); err != nil {
			return err
		}
		if f.Password != f.Confirm {
			return alert(MsgPasswordMismatch, errors.New("confirmation differs"))
		}
	}
	return nil
}

// Patch builds the update request; inactive fields stay nil.
func (f ProfileForm) Patch() models.ProfilePatch {
	var p models.ProfilePatch
	if f.NameActive {
		name := f.UserName
		p.UserName = &name
	}
	if f.EmailActive {
		email := f.Email
		p.Email = &email
	}
	if f.PasswordActive {
		password := f.Password
		p.Password = &password
	}
	return p
}
