package booking

import (
	"fmt"
	"net/url"
	"strings"

	"eaglegym/internal/content"
)

// Linker builds messaging deep links of the form <base>/<phone>?text=<message>.
type Linker struct {
	base            string
	membershipPhone string
	trainingPhone   string
}

func NewLinker(base, membershipPhone, trainingPhone string) *Linker {
	return &Linker{
		base:            strings.TrimRight(base, "/"),
		membershipPhone: membershipPhone,
		trainingPhone:   trainingPhone,
	}
}

func (l *Linker) MembershipLink(offer content.Offer) Link {
	msg := fmt.Sprintf("Hello, I would like to book the %s offer.", offer.Duration)
	return Link{
		Kind:    KindMembership,
		URL:     l.build(l.membershipPhone, msg),
		Message: msg,
	}
}

func (l *Linker) PersonalTrainingLink(pkg content.PtPackage) Link {
	msg := fmt.Sprintf("Hello, I would like to book %d PT Sessions.", pkg.Sessions)
	return Link{
		Kind:    KindPersonalTraining,
		URL:     l.build(l.trainingPhone, msg),
		Message: msg,
	}
}

func (l *Linker) build(phone, msg string) string {
	// spaces as %20 so the message survives every messaging client
	text := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return l.base + "/" + phone + "?text=" + text
}
