// Package domain models results of the Google Maps geocoding service (the
// legacy "maps/geo" endpoint that answers in KML/XML).
//
// # Placemarks
//
// Every answer is a list of placemarks ordered from the most to the least
// specific match. A placemark bundles a formatted address, an accuracy level,
// a coordinate pair and an xAL address breakdown:
//
//	Country
//	  AdministrativeArea           region, state, province
//	    SubAdministrativeArea      county, municipality
//	      Locality                 town, city
//	        DependentLocality      district, arrondissement
//	          Thoroughfare         street
//	          PostalCode
//
// Any level may be missing. Every leaf value of [Placemark] is a pointer so an
// absent node stays distinguishable from an empty one.
//
// # Coordinates
//
// Point coordinates arrive as "longitude,latitude,altitude". Fewer than three
// components means the point is unusable and both longitude and latitude are
// reported absent. Requests use the opposite order: the reverse query string
// and the viewport fields are "latitude,longitude".
//
// # Accuracy
//
// Accuracy is an integer from 1 (country) to 9 (premise). See
// [DescribeAccuracy]. Anything else is "Unknown accuracy".
//
// # Status codes
//
// Provider status codes (200, 5xx, 6xx) map to fixed descriptions. See
// [StatusDescription] and [ProviderError].
package domain
