package router

import "github.com/theoremus-urban-solutions/transit-catalogue/catalogue"

// Item is one step of a route: either a WaitItem or a RideItem
type Item interface {
	// Minutes returns the duration of the step
	Minutes() float64
	isItem()
}

// WaitItem is time spent at a stop waiting to board
type WaitItem struct {
	Stop catalogue.Stop
	Time float64
}

// RideItem is a ride on one bus over SpanCount consecutive stop-to-stop hops
type RideItem struct {
	Bus       catalogue.Bus
	SpanCount int
	Time      float64
}

func (w WaitItem) Minutes() float64 { return w.Time }
func (r RideItem) Minutes() float64 { return r.Time }

func (WaitItem) isItem() {}
func (RideItem) isItem() {}

// Route is a minimum-time itinerary between two stops
type Route struct {
	Items     []Item
	TotalTime float64 // minutes
}
