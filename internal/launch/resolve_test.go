package launch

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/launchplot/internal/orbit"
	"github.com/papapumpkin/launchplot/internal/record"
)

func mustBlock(t *testing.T, lines ...string) record.RawBlock {
	t.Helper()
	b, err := record.TokenizeBlock(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("TokenizeBlock: %v", err)
	}
	return b
}

func testCalc() *orbit.Calculator {
	return orbit.NewCalculator(orbit.DefaultConstants())
}

func TestResolveFullRecord(t *testing.T) {
	t.Parallel()

	b := mustBlock(t,
		"编号：2021-058",
		"火箭制造方：中国",
		"时间：2021-07-04 03:28(UTC+8)",
		"位置：酒泉卫星发射中心",
		"任务名：天链一号05",
		"飞行编号：Y77",
		"发射提供方：中国航天科技集团",
		"载荷研制方：五院",
		"载荷运营方：北京跟踪与通信技术研究所",
		"载荷信息：天链一号05星[1]，约2.4吨",
		"载具：长征三号乙",
		"轨道：200km×35786km",
		"预期轨道：201km×36000km",
		"结果：成功",
		"备注：第77次飞行",
	)

	r, ws, err := Resolve(b, testCalc())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(ws) != 0 {
		t.Errorf("warnings = %v, want none", ws)
	}

	if r.ID != "2021-058" || r.Manufacturer != "中国" || r.Launcher != "长征三号乙" {
		t.Errorf("identity fields = %q %q %q", r.ID, r.Manufacturer, r.Launcher)
	}
	if r.Time.Hour() != 19 || r.Time.Day() != 3 {
		t.Errorf("Time = %v, want 2021-07-03 19:28 UTC", r.Time)
	}
	if r.PayloadInfo != "天链一号05星，约2.4吨" {
		t.Errorf("PayloadInfo = %q", r.PayloadInfo)
	}
	if diff := cmp.Diff([]float64{2.4}, r.PayloadMass); diff != "" {
		t.Errorf("PayloadMass mismatch (-want +got):\n%s", diff)
	}
	// 预期轨道 outranks the generic 轨道 key.
	if r.Orbit != "201km×36000km" {
		t.Errorf("Orbit = %q, want expected orbit", r.Orbit)
	}
	if !r.Success || r.Physics == nil {
		t.Fatalf("Success = %v, Physics = %v, want evaluated success", r.Success, r.Physics)
	}
	if r.TotalEnergy() <= 0 || r.DeltaV() <= 0 {
		t.Errorf("TotalEnergy = %d, DeltaV = %d, want positive", r.TotalEnergy(), r.DeltaV())
	}
	if r.PayloadDeveloper != "五院" {
		t.Errorf("PayloadDeveloper = %q", r.PayloadDeveloper)
	}
	if r.MassKg() != 2400 {
		t.Errorf("MassKg = %d, want 2400", r.MassKg())
	}
}

func TestResolveLaunchProviderFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "fallback only",
			lines: []string{"时间：2021-01-01", "发射与载荷：星际荣耀"},
			want:  "星际荣耀",
		},
		{
			name:  "both present",
			lines: []string{"时间：2021-01-01", "发射与载荷：星际荣耀", "发射提供方：中国长城工业集团"},
			want:  "中国长城工业集团",
		},
		{
			name:  "blank primary",
			lines: []string{"时间：2021-01-01", "发射提供方： ", "发射与载荷：Rocket Lab"},
			want:  "Rocket Lab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, _, err := Resolve(mustBlock(t, tt.lines...), testCalc())
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if r.LaunchProvider != tt.want {
				t.Errorf("LaunchProvider = %q, want %q", r.LaunchProvider, tt.want)
			}
		})
	}
}

func TestResolvePayloadChains(t *testing.T) {
	t.Parallel()

	b := mustBlock(t,
		"时间：2021-01-01",
		"发射与运营：SpaceX",
		"主载荷信息：星链 60颗，共15.6吨",
		"搭车载荷信息：立方星 0.1吨",
		"结果：失败",
	)
	r, _, err := Resolve(b, testCalc())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.PayloadOperator != "SpaceX" || r.PayloadDeveloper != "SpaceX" {
		t.Errorf("operator = %q, developer = %q, want SpaceX for both", r.PayloadOperator, r.PayloadDeveloper)
	}
	if want := "星链 60颗，共15.6吨；立方星 0.1吨"; r.PayloadInfo != want {
		t.Errorf("PayloadInfo = %q, want %q", r.PayloadInfo, want)
	}
	if diff := cmp.Diff([]float64{15.6, 0.1}, r.PayloadMass); diff != "" {
		t.Errorf("PayloadMass mismatch (-want +got):\n%s", diff)
	}
	if r.Success || r.Physics != nil {
		t.Errorf("failed launch: Success = %v, Physics = %v", r.Success, r.Physics)
	}
	if r.TotalEnergy() != 0 || r.DeltaV() != 0 || r.RelativeEnergy() != 0 || r.SpecificEnergy() != 0 {
		t.Error("failed launch reports non-zero energy")
	}
}

func TestResolveExplicitMass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mass string
		want []float64
	}{
		{mass: "1.2吨；0.8吨", want: []float64{1.2, 0.8}},
		{mass: "300，450", want: []float64{300, 450}},
		{mass: "１．５吨", want: []float64{1.5}},
	}
	for _, tt := range tests {
		r, _, err := Resolve(mustBlock(t, "时间：2021-01-01", "载荷信息：约9吨", "载荷质量："+tt.mass), testCalc())
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if diff := cmp.Diff(tt.want, r.PayloadMass); diff != "" {
			t.Errorf("mass %q mismatch (-want +got):\n%s", tt.mass, diff)
		}
	}
}

func TestResolveResultFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lines []string
		want  bool
	}{
		{lines: []string{"结果：成功"}, want: true},
		{lines: []string{"结果(发射与回收)：成功"}, want: true},
		{lines: []string{"结果：部分成功"}, want: false},
		{lines: []string{"结果：失败", "结果(发射与回收)：成功"}, want: false},
		{lines: nil, want: false},
	}
	for _, tt := range tests {
		lines := append([]string{"时间：2021-01-01", "发射提供方：x", "轨道：200km×200km", "载荷信息：1吨"}, tt.lines...)
		r, _, err := Resolve(mustBlock(t, lines...), testCalc())
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if r.Success != tt.want {
			t.Errorf("lines %v: Success = %v, want %v", tt.lines, r.Success, tt.want)
		}
	}
}

func TestResolveOrbitPriority(t *testing.T) {
	t.Parallel()

	b := mustBlock(t,
		"时间：2021-01-01",
		"轨道：1km×1km",
		"运营轨道：2km×2km",
		"预期轨道：3km×3km",
		"实际轨道：4km×4km",
		"初始轨道：5km×5km",
		"轨道(末级)：6km×6km",
	)
	r, _, err := Resolve(b, testCalc())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Orbit != "6km×6km" {
		t.Errorf("Orbit = %q, want final-stage orbit", r.Orbit)
	}
}

func TestResolveWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []WarningKind
	}{
		{
			name:  "missing provider",
			lines: []string{"结果：失败"},
			want:  []WarningKind{WarnMissingProvider},
		},
		{
			name:  "missing orbit",
			lines: []string{"发射提供方：x", "结果：成功"},
			want:  []WarningKind{WarnMissingOrbit},
		},
		{
			name:  "unparseable orbit",
			lines: []string{"发射提供方：x", "轨道：近地轨道", "结果：成功"},
			want:  []WarningKind{WarnUnparseableOrbit},
		},
		{
			name:  "zero energy",
			lines: []string{"发射提供方：x", "轨道：200km×200km", "载荷信息：保密", "结果：成功"},
			want:  []WarningKind{WarnZeroEnergy},
		},
		{
			name:  "clean",
			lines: []string{"发射提供方：x", "轨道：200km×200km", "载荷信息：1吨", "结果：成功"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := append([]string{"编号：W1", "时间：2021-05-05"}, tt.lines...)
			r, ws, err := Resolve(mustBlock(t, lines...), testCalc())
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			var kinds []WarningKind
			for _, w := range ws {
				kinds = append(kinds, w.Kind)
				if w.ID != "W1" || !w.Time.Equal(r.Time) {
					t.Errorf("warning context = %+v, want record id and time", w)
				}
			}
			if diff := cmp.Diff(tt.want, kinds); diff != "" {
				t.Errorf("warnings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveBadTime(t *testing.T) {
	t.Parallel()

	_, _, err := Resolve(mustBlock(t, "编号：1", "时间：明天"), testCalc())
	if !errors.Is(err, ErrUnparseableTimestamp) {
		t.Fatalf("err = %v, want ErrUnparseableTimestamp", err)
	}

	_, _, err = Resolve(mustBlock(t, "编号：1"), testCalc())
	if !errors.Is(err, ErrUnparseableTimestamp) {
		t.Fatalf("missing time err = %v, want ErrUnparseableTimestamp", err)
	}
}
