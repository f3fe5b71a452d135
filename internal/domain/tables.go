package domain

var Tables = []interface{}{
	&Honey{},
	&LocalSource{},
	&Event{},
	&CityContent{},
	&NewsletterSubscription{},
}
