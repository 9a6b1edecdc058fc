package printing

// reportTemplate is the built-in financial report layout. All styling
// is inline so the document renders identically anywhere.
const reportTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<title>Relatório Financeiro</title>
<style>
  body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; color: #222; margin: 0; }
  h1 { font-size: 22px; margin-bottom: 2px; }
  h2 { font-size: 15px; margin: 24px 0 8px; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
  .period { color: #666; font-size: 12px; margin-bottom: 18px; }
  .totals { display: flex; gap: 16px; }
  .totals .card { flex: 1; border: 1px solid #ddd; border-radius: 6px; padding: 10px 14px; }
  .card .label { font-size: 11px; color: #666; text-transform: uppercase; }
  .card .value { font-size: 18px; font-weight: bold; margin-top: 4px; }
  .income { color: #2e7d32; }
  .expense { color: #c62828; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  th { text-align: left; color: #666; font-weight: normal; border-bottom: 1px solid #ccc; padding: 4px 6px; }
  td { border-bottom: 1px solid #eee; padding: 4px 6px; }
  td.num { text-align: right; white-space: nowrap; }
  .muted { color: #888; font-size: 12px; }
  .charts { display: flex; gap: 30px; align-items: flex-start; margin-top: 10px; }
  .pie { width: 170px; height: 170px; border-radius: 50%; background: {{.PieGradient}}; }
  .legend { font-size: 12px; }
  .legend .swatch { display: inline-block; width: 10px; height: 10px; border-radius: 2px; margin-right: 6px; }
  .bars { display: flex; align-items: flex-end; gap: 8px; height: 140px; margin-top: 10px; }
  .bars .day { display: flex; flex-direction: column; align-items: center; justify-content: flex-end; height: 100%; }
  .bars .stack { display: flex; align-items: flex-end; gap: 2px; height: 100%; }
  .bars .bar { width: 12px; border-radius: 2px 2px 0 0; }
  .bars .bar.in { background: #2e7d32; }
  .bars .bar.out { background: #c62828; }
  .bars .label { font-size: 9px; color: #666; margin-top: 4px; }
</style>
</head>
<body>
  <h1>Relatório Financeiro</h1>
  <div class="period">Período: {{formatDate .From}} a {{formatDate .To}}</div>

  <div class="totals">
    <div class="card">
      <div class="label">Total de entradas</div>
      <div class="value income">{{formatMoney .TotalIncome}}</div>
    </div>
    <div class="card">
      <div class="label">Total de saídas</div>
      <div class="value expense">{{formatMoney .TotalExpense}}</div>
    </div>
    <div class="card">
      <div class="label">Saldo do período</div>
      <div class="value">{{formatMoney .Balance}}</div>
    </div>
  </div>

  <h2>Maiores despesas</h2>
  {{if .TopExpenses}}
  <table>
    <tr><th>Empresa</th><th>Categoria</th><th>Data</th><th class="num">Valor</th></tr>
    {{range .TopExpenses}}
    <tr>
      <td>{{.Merchant}}</td>
      <td>{{title .Category}}</td>
      <td>{{formatDate .Date}}</td>
      <td class="num">{{formatMoney (abs .Amount)}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}<div class="muted">Nenhuma despesa no período.</div>{{end}}

  <h2>Maiores entradas</h2>
  {{if .TopIncomes}}
  <table>
    <tr><th>Empresa</th><th>Data</th><th class="num">Valor</th></tr>
    {{range .TopIncomes}}
    <tr>
      <td>{{.Merchant}}</td>
      <td>{{formatDate .Date}}</td>
      <td class="num">{{formatMoney .Amount}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}<div class="muted">Nenhuma entrada no período.</div>{{end}}

  <h2>Transações atípicas (outliers)</h2>
  {{if .Outliers}}
  <table>
    <tr><th>Empresa</th><th>Categoria</th><th>Data</th><th class="num">Valor</th></tr>
    {{range .Outliers}}
    <tr>
      <td>{{.Merchant}}</td>
      <td>{{title .Category}}</td>
      <td>{{formatDate .Date}}</td>
      <td class="num">{{formatMoney (abs .Amount)}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}<div class="muted">Nenhuma transação atípica identificada.</div>{{end}}

  {{if .Slices}}
  <h2>Distribuição de despesas por categoria</h2>
  <div class="charts">
    <div class="pie"></div>
    <div class="legend">
      {{range .Slices}}
      <div>
        <span class="swatch" style="background: {{.Color}}"></span>
        {{title .Category}}: {{formatMoney .Total}} ({{printf "%.1f" .Percent}}%)
      </div>
      {{end}}
    </div>
  </div>
  {{end}}

  {{if .Bars}}
  <h2>Fluxo diário de caixa</h2>
  <div class="bars">
    {{range .Bars}}
    <div class="day">
      <div class="stack">
        <div class="bar in" style="height: {{printf "%.1f" .IncomeHeight}}%"></div>
        <div class="bar out" style="height: {{printf "%.1f" .ExpenseHeight}}%"></div>
      </div>
      <div class="label">{{.Label}}</div>
    </div>
    {{end}}
  </div>
  {{end}}
</body>
</html>`
