// Package loader reads a network description document and loads it into a
// catalogue.
//
// A document carries base requests (stops with their road distances, and bus
// lines), optional routing settings and the stat requests to answer. Documents
// can be JSON or YAML with the same field names:
//
//	{
//	  "base_requests": [
//	    {"type": "Stop", "name": "A", "latitude": 55.61, "longitude": 37.20, "road_distances": {"B": 3900}},
//	    {"type": "Stop", "name": "B", "latitude": 55.59, "longitude": 37.20},
//	    {"type": "Bus", "name": "750", "stops": ["A", "B"], "is_roundtrip": false}
//	  ],
//	  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
//	  "stat_requests": [
//	    {"id": 1, "type": "Bus", "name": "750"},
//	    {"id": 2, "type": "Route", "from": "A", "to": "B"}
//	  ]
//	}
//
// Apply loads stops first, then distances, then buses, so requests may appear in
// any order inside base_requests.
package loader
