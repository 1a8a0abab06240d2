package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespacePrefix = "tradelab_"

// Sample 一个计数器的当前值，Key 形如 tradelab_orders_executed_total{type=Market}
type Sample struct {
	Key   string
	Value float64
}

// Snapshot 采集 tradelab_ 前缀的非零计数器，按 Key 排序
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER || !strings.HasPrefix(mf.GetName(), namespacePrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if v == 0 {
				continue
			}
			out = append(out, Sample{Key: sampleKey(mf.GetName(), m.GetLabel()), Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func sampleKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, lp := range labels {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(lp.GetName())
		b.WriteByte('=')
		b.WriteString(lp.GetValue())
	}
	b.WriteByte('}')
	return b.String()
}
