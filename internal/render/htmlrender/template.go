package htmlrender

// documentTemplate is sized for one A4 page at 96dpi per .page element.
// Continuation pages drop the header band and address boxes so long item
// lists keep their table rhythm; the summary only appears on the last page.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #000; }
  @page { size: A4; margin: 0; }
  .page {
    width: 794px;
    height: 1122px;
    padding: 38px;
    page-break-after: always;
    position: relative;
  }
  .page:last-child { page-break-after: auto; }
  .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 18px; }
  .header .title { font-size: 26px; font-weight: bold; letter-spacing: 2px; color: {{.HeaderColor}}; }
  .header .meta { margin-top: 8px; font-size: 12px; line-height: 1.6; }
  .header img { max-height: 70px; max-width: 180px; {{.LogoStyle}} }
  .parties { display: flex; gap: 16px; margin-bottom: 18px; }
  .party {
    flex: 1;
    border: 1px solid #bbb;
    padding: 10px 12px;
    line-height: 1.5;
  }
  .party .label {
    display: inline-block;
    background: {{.HeaderColor}};
    color: {{.LabelColor}};
    padding: 2px 8px;
    font-weight: bold;
    margin-bottom: 6px;
  }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 1px solid #bbb; padding: 6px 8px; text-align: left; vertical-align: top; }
  th { background: {{.HeaderColor}}; color: {{.LabelColor}}; font-weight: bold; }
  td.num, th.num { text-align: right; white-space: nowrap; }
  .item-desc { font-size: 10px; color: #555; margin-top: 2px; }
  .summary { display: flex; justify-content: flex-end; margin-top: 14px; }
  .summary table { width: 320px; }
  .summary td:first-child { font-weight: bold; }
  .summary .total td { background: {{.HeaderColor}}; color: {{.LabelColor}}; font-weight: bold; }
  .words { margin-top: 10px; font-style: italic; }
  .info { margin-top: 18px; border: 1px solid #bbb; padding: 10px 12px; line-height: 1.5; }
  .info .label { font-weight: bold; margin-bottom: 4px; }
</style>
</head>
<body>
{{- $root := . -}}
{{- range .Pages}}
<div class="page">
  {{- if not .Continuation}}
  <div class="header">
    <div>
      <div class="title">{{$root.Title}}</div>
      <div class="meta">
        <div>{{$root.NumberLabel}} {{$root.Number}}</div>
        <div>Date: {{$root.Date}}</div>
      </div>
    </div>
    <img src="{{$root.LogoSrc}}" alt="logo">
  </div>
  <div class="parties">
    <div class="party">
      <div class="label">{{$root.FromLabel}}</div>
      <div><strong>{{$root.From.Name}}</strong></div>
      <div>{{$root.From.Address}}</div>
      <div>{{$root.From.Email}}</div>
      <div>{{$root.From.Phone}}</div>
    </div>
    <div class="party">
      <div class="label">{{$root.ToLabel}}</div>
      <div><strong>{{$root.To.Name}}</strong></div>
      <div>{{$root.To.Address}}</div>
      <div>{{$root.To.Email}}</div>
      <div>{{$root.To.Phone}}</div>
    </div>
  </div>
  {{- end}}
  <table>
    <thead>
      <tr>
        <th>Sl. No.</th>
        <th>Item</th>
        <th class="num">Amount</th>
        <th class="num">GST</th>
        <th class="num">CGST</th>
        <th class="num">SGST</th>
        <th class="num">Total</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Rows}}
      <tr>
        <td>{{.Serial}}</td>
        <td>{{.Name}}{{if .Description}}<div class="item-desc">{{.Description}}</div>{{end}}</td>
        <td class="num">{{.Amount}}</td>
        <td class="num">{{.GSTPercent}}</td>
        <td class="num">{{.CGST}}</td>
        <td class="num">{{.SGST}}</td>
        <td class="num">{{.Total}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
  {{- if .Last}}
  <div class="summary">
    <table>
      <tr><td>Amount</td><td class="num">{{$root.Summary.Subtotal}}</td></tr>
      <tr><td>CGST</td><td class="num">{{$root.Summary.CGST}}</td></tr>
      <tr><td>SGST</td><td class="num">{{$root.Summary.SGST}}</td></tr>
      {{- if $root.Summary.HasDiscount}}
      <tr><td>Discount ({{$root.Summary.DiscountPercent}}%)</td><td class="num">-{{$root.Summary.DiscountAmount}}</td></tr>
      {{- end}}
      {{- if $root.Summary.RoundOff}}
      <tr><td>Round Off</td><td class="num">{{$root.Summary.RoundOffDelta}}</td></tr>
      {{- end}}
      <tr class="total"><td>Total Amount</td><td class="num">{{$root.Summary.Total}}</td></tr>
    </table>
  </div>
  <div class="words">{{$root.Summary.Words}}</div>
  {{- if $root.ShowInfo}}
  <div class="info">
    <div class="label">Additional Information</div>
    <div>{{$root.Info}}</div>
  </div>
  {{- end}}
  {{- end}}
</div>
{{- end}}
</body>
</html>
`
