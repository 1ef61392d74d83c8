package server

import (
	"eaglegym/internal/content"
	"eaglegym/internal/gym"
)

// BranchCard is one entry of the landing page branch chooser.
type BranchCard struct {
	Slug      string  `json:"slug" example:"fostat"`
	NameEn    string  `json:"name_en,omitempty" example:"Fostat"`
	NameAr    string  `json:"name_ar,omitempty"`
	AddressEn *string `json:"address_en,omitempty"`
	AddressAr *string `json:"address_ar,omitempty"`
	Selected  bool    `json:"selected"`
}

type LandingResponse struct {
	Gym      string       `json:"gym" example:"eagle-gym"`
	Branches []BranchCard `json:"branches"`
	Error    string       `json:"error,omitempty"`
}

type BranchPageResponse struct {
	Branch       *gym.Branch           `json:"branch,omitempty"`
	Offers       []content.Offer       `json:"offers"`
	PtPackages   []content.PtPackage   `json:"pt_packages"`
	SpecialOffer *content.SpecialOffer `json:"special_offer,omitempty"`
	TimeLeft     *content.Countdown    `json:"time_left,omitempty"`
	Errors       []string              `json:"errors,omitempty"`
}
