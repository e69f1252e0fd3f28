// Package holiday defines the Swedish public and observance holidays and
// builds calendar documents from them. Date computation is delegated to the
// rickar/cal calculation helpers; recurrence shapes come from
// internal/model.
package holiday

import (
	"time"

	"github.com/rickar/cal/v2"

	"helgdagar/internal/model"
)

// Holidays anchored to Easter Sunday, as day offsets.
var (
	Skartorsdagen = &cal.Holiday{
		Name:   "Skärtorsdagen",
		Type:   cal.ObservanceOther,
		Offset: -3,
		Func:   cal.CalcEasterOffset,
	}

	Langfredagen = &cal.Holiday{
		Name:   "Långfredagen",
		Type:   cal.ObservancePublic,
		Offset: -2,
		Func:   cal.CalcEasterOffset,
	}

	Paskafton = &cal.Holiday{
		Name:   "Påskafton",
		Type:   cal.ObservancePublic,
		Offset: -1,
		Func:   cal.CalcEasterOffset,
	}

	Paskdagen = &cal.Holiday{
		Name:   "Påskdagen",
		Type:   cal.ObservancePublic,
		Offset: 0,
		Func:   cal.CalcEasterOffset,
	}

	AnnandagPask = &cal.Holiday{
		Name:   "Annandag påsk",
		Type:   cal.ObservancePublic,
		Offset: 1,
		Func:   cal.CalcEasterOffset,
	}

	KristiHimmelsfardsdag = &cal.Holiday{
		Name:   "Kristi himmelsfärdsdag",
		Type:   cal.ObservancePublic,
		Offset: 39,
		Func:   cal.CalcEasterOffset,
	}

	Pingstafton = &cal.Holiday{
		Name:   "Pingstafton",
		Type:   cal.ObservancePublic,
		Offset: 48,
		Func:   cal.CalcEasterOffset,
	}

	Pingstdagen = &cal.Holiday{
		Name:   "Pingstdagen",
		Type:   cal.ObservancePublic,
		Offset: 49,
		Func:   cal.CalcEasterOffset,
	}
)

// Holidays on a fixed month and day.
var (
	Nyarsdagen = &cal.Holiday{
		Name:  "Nyårsdagen",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}

	Trettondagsafton = &cal.Holiday{
		Name:  "Trettondagsafton",
		Type:  cal.ObservanceOther,
		Month: time.January,
		Day:   5,
		Func:  cal.CalcDayOfMonth,
	}

	TrettondedagJul = &cal.Holiday{
		Name:  "Trettondedag jul",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   6,
		Func:  cal.CalcDayOfMonth,
	}

	Valborgsmassoafton = &cal.Holiday{
		Name:  "Valborgsmässoafton",
		Type:  cal.ObservanceOther,
		Month: time.April,
		Day:   30,
		Func:  cal.CalcDayOfMonth,
	}

	ForstaMaj = &cal.Holiday{
		Name:  "Första maj",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}

	Nationaldagen = &cal.Holiday{
		Name:  "Sveriges nationaldag",
		Type:  cal.ObservancePublic,
		Month: time.June,
		Day:   6,
		Func:  cal.CalcDayOfMonth,
	}

	Julafton = &cal.Holiday{
		Name:  "Julafton",
		Type:  cal.ObservanceOther,
		Month: time.December,
		Day:   24,
		Func:  cal.CalcDayOfMonth,
	}

	Juldagen = &cal.Holiday{
		Name:  "Juldagen",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	AnnandagJul = &cal.Holiday{
		Name:  "Annandag jul",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   26,
		Func:  cal.CalcDayOfMonth,
	}

	Nyarsafton = &cal.Holiday{
		Name:  "Nyårsafton",
		Type:  cal.ObservanceOther,
		Month: time.December,
		Day:   31,
		Func:  cal.CalcDayOfMonth,
	}
)

// Holidays on the first occurrence of a weekday on or after a month/day.
var (
	Midsommarafton = &cal.Holiday{
		Name:    "Midsommarafton",
		Type:    cal.ObservanceOther,
		Month:   time.June,
		Day:     19,
		Weekday: time.Friday,
		Func:    cal.CalcWeekdayFrom,
	}

	Midsommardagen = &cal.Holiday{
		Name:    "Midsommardagen",
		Type:    cal.ObservancePublic,
		Month:   time.June,
		Day:     20,
		Weekday: time.Saturday,
		Func:    cal.CalcWeekdayFrom,
	}

	Allhelgonaafton = &cal.Holiday{
		Name:    "Allhelgonaafton",
		Type:    cal.ObservanceOther,
		Month:   time.October,
		Day:     30,
		Weekday: time.Friday,
		Func:    cal.CalcWeekdayFrom,
	}

	AllaHelgonsDag = &cal.Holiday{
		Name:    "Alla helgons dag",
		Type:    cal.ObservancePublic,
		Month:   time.October,
		Day:     31,
		Weekday: time.Saturday,
		Func:    cal.CalcWeekdayFrom,
	}
)

// definition pairs a holiday with its work status and the recurrence its
// events carry.
type definition struct {
	holiday *cal.Holiday
	work    model.WorkStatus
	rule    model.Recurrence
}

var yearly = model.Recurrence{Kind: model.RecurYearly}

// easterRelative lists the Easter-anchored holidays in emission order.
// Their events are concrete per-year instances and never recur.
var easterRelative = []definition{
	{holiday: Skartorsdagen, work: model.WorkDepends},
	{holiday: Langfredagen, work: model.WorkFree},
	{holiday: Paskafton, work: model.WorkFree},
	{holiday: Paskdagen, work: model.WorkFree},
	{holiday: AnnandagPask, work: model.WorkFree},
	{holiday: KristiHimmelsfardsdag, work: model.WorkFree},
	{holiday: Pingstafton, work: model.WorkFree},
	{holiday: Pingstdagen, work: model.WorkFree},
}

// fixedDates lists the fixed-date holidays in emission order.
var fixedDates = []definition{
	{holiday: Nyarsdagen, work: model.WorkFree, rule: yearly},
	{holiday: Trettondagsafton, work: model.WorkDepends, rule: yearly},
	{holiday: TrettondedagJul, work: model.WorkFree, rule: yearly},
	{holiday: Valborgsmassoafton, work: model.WorkDepends, rule: yearly},
	{holiday: ForstaMaj, work: model.WorkFree, rule: yearly},
	{holiday: Nationaldagen, work: model.WorkFree, rule: yearly},
	{holiday: Julafton, work: model.WorkDeFacto, rule: yearly},
	{holiday: Juldagen, work: model.WorkFree, rule: yearly},
	{holiday: AnnandagJul, work: model.WorkFree, rule: yearly},
	{holiday: Nyarsafton, work: model.WorkDeFacto, rule: yearly},
}

// weekdayWindows lists the weekday-window holidays in emission order. The
// candidate sets in each rule mirror the holiday's Month/Day/Weekday anchor
// and are what recurrence-aware consumers evaluate; the computed date is
// only used for the event anchor.
var weekdayWindows = []definition{
	{
		holiday: Midsommarafton,
		work:    model.WorkDeFacto,
		rule: model.Recurrence{
			Kind:      model.RecurYearlyWindow,
			Weekday:   time.Friday,
			MonthDays: []int{19, 20, 21, 22, 23, 24, 25},
			Months:    []time.Month{time.June},
		},
	},
	{
		holiday: Midsommardagen,
		work:    model.WorkFree,
		rule: model.Recurrence{
			Kind:      model.RecurYearlyWindow,
			Weekday:   time.Saturday,
			MonthDays: []int{20, 21, 22, 23, 24, 25, 26},
			Months:    []time.Month{time.June},
		},
	},
	{
		holiday: Allhelgonaafton,
		work:    model.WorkDepends,
		rule: model.Recurrence{
			Kind:      model.RecurYearlyWindow,
			Weekday:   time.Friday,
			MonthDays: []int{30, 31, 1, 2, 3, 4, 5},
			Months:    []time.Month{time.October, time.November},
		},
	},
	{
		holiday: AllaHelgonsDag,
		work:    model.WorkFree,
		rule: model.Recurrence{
			Kind:      model.RecurYearlyWindow,
			Weekday:   time.Saturday,
			MonthDays: []int{31, 1, 2, 3, 4, 5, 6},
			Months:    []time.Month{time.October, time.November},
		},
	},
}
