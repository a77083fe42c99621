package usecase

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"biaresh/internal/domain/entity"
)

// Price accepts a JSON number or string and keeps its leading integer part,
// so "120000", 120000.9 and "120000 تومان" all become 120000. Anything
// without leading digits becomes 0 and fails validation.
type Price int64

// UnmarshalJSON implements json.Unmarshaler
func (p *Price) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		*p = 0

		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}

	*p = Price(ParseLeadingInt(raw))

	return nil
}

// ParseLeadingInt parses an optional sign followed by digits and ignores
// whatever follows. It returns 0 when no digits lead the string.
func ParseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// StringList accepts a JSON array of strings or a single comma-separated string.
// Blank entries are dropped.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	var items []string
	switch {
	case bytes.Equal(trimmed, []byte("null")):
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
	default:
		var joined string
		if err := json.Unmarshal(trimmed, &joined); err != nil {
			return err
		}
		items = strings.Split(joined, ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimFunc(item, unicode.IsSpace)
		if item != "" {
			out = append(out, item)
		}
	}
	*l = out

	return nil
}

// ProductInput is the admin product form
type ProductInput struct {
	Name         string          `json:"name" validate:"trimmed_required" msg:"نام محصول الزامی است"`
	NameEn       string          `json:"nameEn" validate:"trimmed_required" msg:"نام انگلیسی الزامی است"`
	Price        Price           `json:"price" validate:"gt=0" msg:"قیمت باید بیشتر از صفر باشد"`
	Category     entity.Category `json:"category"`
	Image        string          `json:"image" validate:"trimmed_required" msg:"آدرس تصویر اصلی الزامی است"`
	Images       StringList      `json:"images"`
	Description  string          `json:"description" validate:"trimmed_required" msg:"توضیحات الزامی است"`
	ScentProfile string          `json:"scentProfile"`
	Benefits     StringList      `json:"benefits"`
	Ingredients  string          `json:"ingredients"`
	PerfectFor   string          `json:"perfectFor"`
}

// ToProduct builds the stored record, applying category and image defaults
func (in ProductInput) ToProduct(id int64) entity.Product {
	category := in.Category
	if category == "" {
		category = entity.CategorySoaps
	}

	product := entity.Product{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		NameEn:       strings.TrimSpace(in.NameEn),
		Price:        int64(in.Price),
		Category:     category,
		Image:        strings.TrimSpace(in.Image),
		Images:       append([]string(nil), in.Images...),
		Description:  strings.TrimSpace(in.Description),
		ScentProfile: in.ScentProfile,
		Benefits:     append([]string(nil), in.Benefits...),
		Ingredients:  in.Ingredients,
		PerfectFor:   in.PerfectFor,
	}
	product.Normalize()

	return product
}

// ContactInput is the public contact form
type ContactInput struct {
	Name    string             `json:"name" validate:"trimmed_required" msg:"نام الزامی است"`
	Email   string             `json:"email" validate:"omitempty,email" msg:"ایمیل وارد شده معتبر نیست"`
	Phone   string             `json:"phone" validate:"mobile" msg:"لطفاً یک شماره تلفن معتبر ایرانی یا ترکی وارد کنید"`
	Message string             `json:"message" validate:"trimmed_required" msg:"متن پیام الزامی است"`
	Type    entity.MessageType `json:"type" validate:"omitempty,oneof=wholesale retail question other" msg:"نوع پیام معتبر نیست"`
}

// CustomerInput is the shipping part of the checkout form
type CustomerInput struct {
	FirstName  string `json:"firstName" validate:"trimmed_required" msg:"نام الزامی است"`
	LastName   string `json:"lastName" validate:"trimmed_required" msg:"نام خانوادگی الزامی است"`
	Email      string `json:"email" validate:"required,email" msg:"ایمیل معتبر الزامی است"`
	Phone      string `json:"phone" validate:"trimmed_required" msg:"شماره تماس الزامی است"`
	Address    string `json:"address" validate:"trimmed_required" msg:"آدرس الزامی است"`
	City       string `json:"city" validate:"trimmed_required" msg:"شهر الزامی است"`
	PostalCode string `json:"postalCode" validate:"trimmed_required" msg:"کد پستی الزامی است"`
}

// CheckoutInput is the checkout form
type CheckoutInput struct {
	Customer CustomerInput `json:"customer"`
	Notes    string        `json:"notes"`
}

// ToCustomer trims every field into the stored customer record
func (in CustomerInput) ToCustomer() entity.Customer {
	return entity.Customer{
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
	}
}
