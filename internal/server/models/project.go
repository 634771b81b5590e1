package models

// Project is one portfolio entry. All display columns are free-form
// strings; the JSON names are the public wire format and must not change.
type Project struct {
	ID           int64  `json:"id"`
	Img          string `json:"img"`
	Title        string `json:"title"`
	Descript     string `json:"descript"`
	DescriptPtbr string `json:"descript_ptbr"`
	Category     string `json:"category"`
	Tecnologies  string `json:"tecnologies"`
	LiveURL      string `json:"live_url"`
	URL          string `json:"url"`
	Download     string `json:"download"`
	LaptopImg    string `json:"laptop_img"`
	MobileImg    string `json:"mobile_img"`
}

// NewProject carries the mutable fields of a project, used for both
// create and full-replace update payloads.
type NewProject struct {
	Img          string `json:"img"`
	Title        string `json:"title"`
	Descript     string `json:"descript"`
	DescriptPtbr string `json:"descript_ptbr"`
	Category     string `json:"category"`
	Tecnologies  string `json:"tecnologies"`
	LiveURL      string `json:"live_url"`
	URL          string `json:"url"`
	Download     string `json:"download"`
	LaptopImg    string `json:"laptop_img"`
	MobileImg    string `json:"mobile_img"`
}
