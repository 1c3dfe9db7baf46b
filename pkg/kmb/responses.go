package kmb

// All etabus endpoints wrap their payload in the same envelope of
// type/version/generated_timestamp/data - only the route-eta endpoint's
// generated_timestamp is meaningful to us

type Stop struct {
	Stop   string `json:"stop"`
	NameEn string `json:"name_en"`
	NameTc string `json:"name_tc"`
	NameSc string `json:"name_sc"`
}

func (s Stop) Name(language Language) string {
	switch language {
	case LanguageEnglish:
		return s.NameEn
	case LanguageSimplifiedChinese:
		return s.NameSc
	default:
		return s.NameTc
	}
}

type Route struct {
	Route       string `json:"route"`
	Bound       string `json:"bound"`
	ServiceType string `json:"service_type"`
	OrigEn      string `json:"orig_en"`
	OrigTc      string `json:"orig_tc"`
	OrigSc      string `json:"orig_sc"`
	DestEn      string `json:"dest_en"`
	DestTc      string `json:"dest_tc"`
	DestSc      string `json:"dest_sc"`
}

func (r Route) Origin(language Language) string {
	switch language {
	case LanguageEnglish:
		return r.OrigEn
	case LanguageSimplifiedChinese:
		return r.OrigSc
	default:
		return r.OrigTc
	}
}

func (r Route) Destination(language Language) string {
	switch language {
	case LanguageEnglish:
		return r.DestEn
	case LanguageSimplifiedChinese:
		return r.DestSc
	default:
		return r.DestTc
	}
}

type RouteStop struct {
	Seq  string `json:"seq"`
	Stop string `json:"stop"`
}

type ETA struct {
	Dir    string  `json:"dir"`
	Seq    int     `json:"seq"`
	EtaSeq int     `json:"eta_seq"`
	Eta    *string `json:"eta"`
}

// ETAFeed is one snapshot of the live arrival feed for a route & service
// type. GeneratedTimestamp is the instant the operator produced the
// snapshot and is the reference point for every countdown
type ETAFeed struct {
	GeneratedTimestamp string
	Entries            []ETA
}

type stopListResponse struct {
	Data []Stop `json:"data"`
}

type routeListResponse struct {
	Data []Route `json:"data"`
}

type routeStopListResponse struct {
	Data []RouteStop `json:"data"`
}

type routeETAResponse struct {
	GeneratedTimestamp string `json:"generated_timestamp"`
	Data               []ETA  `json:"data"`
}
