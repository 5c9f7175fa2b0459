package coord

import (
	"math"
)

// UTM is a Universal Transverse Mercator position on the WGS84 ellipsoid
type UTM struct {
	Northing, Easting float64
	Zone              int
	Letter            byte
}

const (
	equatorialRadius = 6378137.0
	eccSquared       = 0.00669438
	scaleFactor      = 0.9996
	falseEasting     = 500000.0
	falseNorthing    = 10000000.0
)

const bandLetters = "CDEFGHJKLMNPQRSTUVWXX"

// Northern reports whether the position lies in the northern hemisphere
func (u UTM) Northern() bool {
	return u.Letter >= 'N'
}

// LatLonToUTM projects a geographic position. Non finite coordinates are
// projected as 0.
func LatLonToUTM(ll LatLon) UTM {
	ll.Lat = finite(ll.Lat)
	ll.Lon = finite(ll.Lon)
	lon := normalizeLon(ll.Lon)
	zone := int((lon+180)/6) + 1
	if zone > 60 {
		zone = 60
	}

	lat := ll.Lat * math.Pi / 180
	lonOrigin := float64((zone-1)*6-180+3) * math.Pi / 180
	eccPrime := eccSquared / (1 - eccSquared)

	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	n := equatorialRadius / math.Sqrt(1-eccSquared*sinLat*sinLat)
	t := math.Tan(lat) * math.Tan(lat)
	c := eccPrime * cosLat * cosLat
	a := cosLat * (lon*math.Pi/180 - lonOrigin)
	m := meridianArc(lat)

	easting := scaleFactor*n*(a+(1-t+c)*a*a*a/6+
		(5-18*t+t*t+72*c-58*eccPrime)*math.Pow(a, 5)/120) + falseEasting

	northing := scaleFactor * (m + n*math.Tan(lat)*(a*a/2+
		(5-t+9*c+4*c*c)*math.Pow(a, 4)/24+
		(61-58*t+t*t+600*c-330*eccPrime)*math.Pow(a, 6)/720))
	if ll.Lat < 0 {
		northing += falseNorthing
	}

	return UTM{
		Northing: northing,
		Easting:  easting,
		Zone:     zone,
		Letter:   bandLetter(ll.Lat),
	}
}

// UTMToLatLon unprojects a UTM position
func UTMToLatLon(u UTM) LatLon {
	e1 := (1 - math.Sqrt(1-eccSquared)) / (1 + math.Sqrt(1-eccSquared))
	eccPrime := eccSquared / (1 - eccSquared)

	x := u.Easting - falseEasting
	y := u.Northing
	if !u.Northern() {
		y -= falseNorthing
	}
	lonOrigin := float64((u.Zone-1)*6 - 180 + 3)

	m := y / scaleFactor
	mu := m / (equatorialRadius * (1 - eccSquared/4 - 3*eccSquared*eccSquared/64 - 5*math.Pow(eccSquared, 3)/256))

	phi := mu + (3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu)

	sinPhi, cosPhi, tanPhi := math.Sin(phi), math.Cos(phi), math.Tan(phi)
	n1 := equatorialRadius / math.Sqrt(1-eccSquared*sinPhi*sinPhi)
	t1 := tanPhi * tanPhi
	c1 := eccPrime * cosPhi * cosPhi
	r1 := equatorialRadius * (1 - eccSquared) / math.Pow(1-eccSquared*sinPhi*sinPhi, 1.5)
	d := x / (n1 * scaleFactor)

	lat := phi - (n1*tanPhi/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*eccPrime)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*eccPrime-3*c1*c1)*math.Pow(d, 6)/720)
	lon := (d - (1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c1*c1+8*eccPrime+24*t1*t1)*math.Pow(d, 5)/120) / cosPhi

	return LatLon{
		Lat: lat * 180 / math.Pi,
		Lon: lonOrigin + lon*180/math.Pi,
	}
}

func meridianArc(lat float64) float64 {
	e2 := eccSquared
	e4 := e2 * e2
	e6 := e4 * e2
	return equatorialRadius * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))
}

func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// bandLetter returns the latitude band, 'C' at 80S up to 'X' at 84N
func bandLetter(lat float64) byte {
	if !(lat >= -80) {
		return 'C'
	}
	if lat >= 84 {
		return 'X'
	}
	return bandLetters[int((lat+80)/8)]
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
