package score

import (
	"math"
	"sort"

	"github.com/pacwatch/pacwatch/internal/model"
)

// Concentration sub-score blend.
const (
	weightTop3Tickers       = 0.5
	weightDominantSubsector = 0.3
	weightRepeatTrading     = 0.2
)

// Personal-involvement blend; re-weighted when net worth is unknown.
const (
	weightVolumeRatio   = 0.5
	weightFrequency     = 0.3
	weightDirectTrading = 0.2

	weightFrequencyNoWorth = 0.6
	weightDirectNoWorth    = 0.4
)

// Normalization caps.
const (
	fullRepeatTradesPerTicker = 10.0 // 10 trades/ticker averages to 100
	fullFrequencyPerMonth     = 10.0 // 10 trades/month scores 100
)

// Scorer computes influence scores. Pure function of the officials
// population: the scale score is a percentile rank, so every official must
// be scored in one pass.
type Scorer struct{}

// NewScorer creates a scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// ScoreAll computes and attaches an InfluenceScore to every official
func (s *Scorer) ScoreAll(officials []*model.Official) {
	raws := make([]float64, len(officials))
	var positives []float64
	for i, o := range officials {
		raws[i] = rawScale(o)
		if raws[i] > 0 {
			positives = append(positives, raws[i])
		}
	}
	sort.Float64s(positives)

	for i, o := range officials {
		o.Influence = s.score(o, raws[i], positives)
	}
}

// score builds one official's InfluenceScore. positives is the sorted raw
// scale population used for percentile ranking.
func (s *Scorer) score(o *model.Official, raw float64, positives []float64) *model.InfluenceScore {
	detail := make(map[string]model.ScoreDetail, 3)

	scale := scaleScore(o, raw, positives, detail)
	concentration := concentrationScore(o, detail)
	personal, estimated := personalScore(o, detail)

	composite := model.WeightScale*scale +
		model.WeightConcentration*concentration +
		model.WeightPersonal*personal

	return &model.InfluenceScore{
		Scale:         scale,
		Concentration: concentration,
		Personal:      personal,
		Composite:     composite,
		Estimated:     estimated,
		Detail:        detail,
	}
}

// rawScale is the raw dollar scale: financial-sector trade minimums plus
// financial PAC and individual totals. Trades tagged with a financial
// subsector by the disclosure feed count; untagged trades do not.
func rawScale(o *model.Official) float64 {
	raw := o.Contributions.FinancialPAC + o.Contributions.FinancialIndiv
	for _, t := range o.Trades {
		if t.Subsector != "" {
			raw += t.MinAmount
		}
	}
	return raw
}

// scaleScore is the percentile rank of raw among officials with positive
// raw scale; zero raw scale scores zero.
func scaleScore(o *model.Official, raw float64, positives []float64, detail map[string]model.ScoreDetail) float64 {
	var tradeMin float64
	for _, t := range o.Trades {
		if t.Subsector != "" {
			tradeMin += t.MinAmount
		}
	}

	var score float64
	if raw > 0 && len(positives) > 0 {
		// Count of positive-scale officials at or below this raw value.
		atOrBelow := sort.SearchFloat64s(positives, raw+1e-9)
		score = float64(atOrBelow) / float64(len(positives)) * 100
	}

	detail["scale"] = model.ScoreDetail{
		"trade_minimums":       tradeMin,
		"financial_pac":        o.Contributions.FinancialPAC,
		"financial_individual": o.Contributions.FinancialIndiv,
		"raw_total":            raw,
		"percentile":           score,
	}
	return score
}

// concentrationScore blends top-3 ticker dollar concentration, dominant
// subsector share, and a repeat-trading ratio.
func concentrationScore(o *model.Official, detail map[string]model.ScoreDetail) float64 {
	if len(o.Trades) == 0 {
		detail["concentration"] = model.ScoreDetail{
			"top3_ticker_share":        0,
			"dominant_subsector_share": 0,
			"repeat_trading":           0,
		}
		return 0
	}

	tickerDollars := make(map[string]float64)
	subsectorDollars := make(map[string]float64)
	var total float64
	for _, t := range o.Trades {
		tickerDollars[t.Ticker] += t.MinAmount
		if t.Subsector != "" {
			subsectorDollars[t.Subsector] += t.MinAmount
		}
		total += t.MinAmount
	}

	var top3Share, dominantShare float64
	if total > 0 {
		amounts := make([]float64, 0, len(tickerDollars))
		for _, v := range tickerDollars {
			amounts = append(amounts, v)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(amounts)))

		var top3 float64
		for i, v := range amounts {
			if i >= 3 {
				break
			}
			top3 += v
		}
		top3Share = top3 / total * 100

		for _, v := range subsectorDollars {
			if share := v / total * 100; share > dominantShare {
				dominantShare = share
			}
		}
	}

	perTicker := float64(len(o.Trades)) / float64(len(tickerDollars))
	repeat := math.Min(perTicker/fullRepeatTradesPerTicker, 1) * 100

	detail["concentration"] = model.ScoreDetail{
		"top3_ticker_share":        top3Share,
		"dominant_subsector_share": dominantShare,
		"repeat_trading":           repeat,
	}

	return weightTop3Tickers*top3Share +
		weightDominantSubsector*dominantShare +
		weightRepeatTrading*repeat
}

// personalScore measures how personally involved the official is in
// trading: volume against net worth, trade frequency, and direct (not
// spouse/dependent) ownership. Without a net worth estimate the blend drops
// the volume term and the result is flagged as an estimate.
func personalScore(o *model.Official, detail map[string]model.ScoreDetail) (float64, bool) {
	n := len(o.Trades)

	var volume float64
	var direct int
	for _, t := range o.Trades {
		volume += t.MinAmount
		if t.Owner == model.OwnerSelf {
			direct++
		}
	}

	var frequency, directFrac float64
	if n > 0 {
		frequency = math.Min(tradesPerMonth(o.Trades)/fullFrequencyPerMonth, 1) * 100
		directFrac = float64(direct) / float64(n) * 100
	}

	if o.NetWorthKnown() {
		volumeRatio := math.Min(volume/o.NetWorthMid(), 1) * 100
		detail["personal"] = model.ScoreDetail{
			"volume_ratio":    volumeRatio,
			"frequency":       frequency,
			"direct_fraction": directFrac,
			"net_worth_mid":   o.NetWorthMid(),
		}
		return weightVolumeRatio*volumeRatio +
			weightFrequency*frequency +
			weightDirectTrading*directFrac, false
	}

	detail["personal"] = model.ScoreDetail{
		"frequency":       frequency,
		"direct_fraction": directFrac,
	}
	return weightFrequencyNoWorth*frequency + weightDirectNoWorth*directFrac, true
}

// tradesPerMonth averages trade count over the observed trading span
func tradesPerMonth(trades []model.Trade) float64 {
	earliest, latest := trades[0].Date, trades[0].Date
	for _, t := range trades[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
		if t.Date.After(latest) {
			latest = t.Date
		}
	}

	months := latest.Sub(earliest).Hours() / (24 * 30)
	if months < 1 {
		months = 1
	}
	return float64(len(trades)) / months
}
