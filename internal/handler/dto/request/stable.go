package request

type ListStablesQuery struct {
	Search    string   `form:"search"`
	Location  string   `form:"location"`
	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
	Sort      string   `form:"sort"`
	OwnerOnly bool     `form:"ownerOnly"`
	Lat       *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lng       *float64 `form:"lng" binding:"omitempty,min=-180,max=180"`
}
