package dashboard

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Dashboard Heladería</title>
    <style>
      body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: #f8fafc; margin: 0; color: #0f172a; }
      .dashboard { padding: 1.5rem; display: flex; flex-direction: column; gap: 1.5rem; }
      .grid { display: grid; grid-template-columns: repeat(12, minmax(0, 1fr)); gap: 1rem; }
      .row { display: grid; grid-template-columns: repeat(3, minmax(0, 1fr)); gap: 1.5rem; }
      .card { background: white; border-radius: 1rem; box-shadow: 0 1px 2px rgba(15,23,42,0.08); padding: 1rem; }
      .span-2 { grid-column: span 2; } .span-3 { grid-column: span 3; } .span-4 { grid-column: span 4; }
      .span-6 { grid-column: span 6; } .span-12 { grid-column: span 12; }
      .wide { grid-column: span 2; }
      .muted { color: #64748b; font-size: 0.875rem; margin: 0; }
      .value { font-size: 1.5rem; font-weight: 600; margin: 0.25rem 0 0; }
      .change { display: flex; align-items: center; gap: 0.25rem; font-size: 0.875rem; margin-top: 0.5rem; }
      .up { color: #16a34a; } .down { color: #dc2626; }
      h3 { font-weight: 600; margin: 0 0 1rem; font-size: 1rem; }
      .chart { width: 100%; height: 16rem; }
      .chart .bar { fill: #0f172a; }
      .chart text { font-size: 12px; fill: #64748b; }
      .chart .axis { stroke: #cbd5e1; }
      .ranking { list-style: none; padding: 0; margin: 0; display: flex; flex-direction: column; gap: 0.75rem; }
      .ranking li { display: flex; justify-content: space-between; font-size: 0.875rem; }
      .ranking .units { font-weight: 500; }
      .total { font-size: 1.875rem; font-weight: 700; margin: 0; }
      .facts { font-size: 0.875rem; padding-left: 1.25rem; margin: 0; display: flex; flex-direction: column; gap: 0.5rem; }
      @media (max-width: 768px) {
        .grid > .card, .row > .card { grid-column: 1 / -1; }
        .row { grid-template-columns: 1fr; }
      }
    </style>
  </head>
  <body>
    <main class="dashboard">
      <section class="grid metrics">
        {{- range .Cards }}
        <article class="card metric span-{{ $.CardSpan }}" data-direction="{{ .Direction }}">
          <p class="muted">{{ .Title }}</p>
          <p class="value">{{ .Value }}</p>
          <div class="change {{ if .IsUp }}up{{ else }}down{{ end }}">
            {{- if .IsUp }}
            <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-label="sube"><path d="M7 7h10v10" /><path d="M7 17 17 7" /></svg>
            {{- else }}
            <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-label="baja"><path d="m7 7 10 10" /><path d="M17 7v10H7" /></svg>
            {{- end }}
            <span>{{ .PercentLine }}</span>
          </div>
        </article>
        {{- end }}
      </section>

      <section class="row">
        <article class="card wide">
          <h3>{{ .RevenueTitle }}</h3>
          <svg class="chart" viewBox="0 0 {{ coord .Chart.Width }} {{ coord .Chart.Height }}" preserveAspectRatio="none" role="img">
            {{- range .Chart.Ticks }}
            <text class="tick" x="{{ coord (sub $.Chart.AxisX 8) }}" y="{{ coord .Y }}" text-anchor="end" dominant-baseline="middle">{{ .Label }}</text>
            {{- end }}
            <line class="axis" x1="{{ coord .Chart.AxisX }}" y1="{{ coord .Chart.Baseline }}" x2="{{ coord .Chart.Width }}" y2="{{ coord .Chart.Baseline }}" />
            {{- range .Chart.Bars }}
            <g class="point">
              <path class="bar" d="{{ .Path }}"><title>{{ .Tooltip }}</title></path>
              <text class="month" x="{{ coord .LabelX }}" y="{{ coord $.Chart.Height }}" text-anchor="middle">{{ .Label }}</text>
            </g>
            {{- end }}
          </svg>
        </article>

        <article class="card">
          <h3>{{ .ProductsTitle }}</h3>
          <ul class="ranking">
            {{- range .Products }}
            <li data-position="{{ .Position }}"><span class="name">{{ .Name }}</span><span class="units">{{ .UnitsSold }}</span></li>
            {{- end }}
          </ul>
        </article>
      </section>

      <section class="row">
        <article class="card wide">
          <h3>{{ .Orders.Title }}</h3>
          <p class="total">{{ .Orders.Total }}</p>
          <p class="muted">{{ .Orders.Caption }}</p>
        </article>

        <article class="card">
          <h3>{{ .QuickFacts.Title }}</h3>
          <ul class="facts">
            <li>Ticket promedio: <strong>{{ .QuickFacts.AverageTicket }}</strong></li>
            <li>Producto más rentable: <strong>{{ .QuickFacts.MostProfitable }}</strong></li>
            <li>Hora pico ventas: <strong>{{ .QuickFacts.PeakHours }}</strong></li>
          </ul>
        </article>
      </section>
    </main>
  </body>
</html>
`
