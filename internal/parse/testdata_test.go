package parse

// Trimmed-down copies of the e-SAJ page layouts the parsers have to handle.

const trialPage = `
<html><body>
<div class="unj-entity-header">
  <span id="numeroProcesso">0001234-56.2020.8.26.0100</span>
  <span id="classeProcesso">Procedimento Comum Cível</span>
  <span id="assuntoProcesso">Rescisão do contrato e devolução do dinheiro</span>
  <span id="foroProcesso">Foro Central Cível</span>
  <span id="varaProcesso">28ª Vara Cível</span>
  <span id="juizProcesso">João da Silva</span>
  <span id="labelSituacaoProcesso">Em andamento</span>
  <div id="valorAcaoProcesso">R$ 35.000,00</div>
</div>
<table id="tablePartesPrincipais">
  <tr><td class="nomeParteEAdvogado">Maria Oliveira
      Advogada: Ana Souza</td></tr>
</table>
<table id="tabelaUltimasMovimentacoes">
  <tbody class="containerMovimentacao">
    <tr>
      <td class="dataMovimentacao">14/05/2024</td>
      <td></td>
      <td class="descricaoMovimentacao">Conclusos para decisão</td>
    </tr>
    <tr>
      <td class="dataMovimentacao">02/05/2024</td>
      <td></td>
      <td class="descricaoMovimentacao">Juntada de petição</td>
    </tr>
  </tbody>
</table>
</body></html>`

const trialPageBare = `
<html><body>
  <span id="numeroProcesso">0001234-56.2020.8.26.0100</span>
</body></html>`

const appellatePage = `
<html><body>
<div class="unj-entity-header">
  <span id="numeroProcesso">1009876-54.2021.8.26.0000</span>
  <span id="classeProcesso">Apelação Cível</span>
  <span id="assuntoProcesso">Planos de saúde</span>
  <span id="orgaoJulgadorProcesso">4ª Câmara de Direito Privado</span>
  <span id="relatorProcesso">Des. Carlos Pereira</span>
  <span id="situacaoProcesso">Julgado</span>
  <div id="valorAcaoProcesso">R$ 12.345,67</div>
</div>
<table>
  <tr><td class="nomeParteEAdvogado">Apelante: Empresa X
      Advogado: José Santos</td></tr>
</table>
<table>
  <tbody class="movimentacaoProcesso">
    <tr>
      <td>10/06/2024</td>
      <td></td>
      <td>Acórdão registrado</td>
    </tr>
  </tbody>
</table>
</body></html>`

const incidentPage = `
<html><body>
<div class="unj-entity-header">
  <span class="unj-larger">Cumprimento de sentença (em apenso ao processo principal)</span>
  <span id="foroProcesso">Foro de Santos</span>
  <span id="varaProcesso">2ª Vara Cível</span>
  <span id="assuntoProcesso">Obrigação de fazer</span>
</div>
<table>
  <tr><td class="nomeParteEAdvogado">Exequente: Pedro Lima</td></tr>
</table>
<table>
  <tbody class="containerMovimentacao">
    <tr>
      <td>22/04/2024</td>
      <td></td>
      <td class="descricaoMovimentacao">Início do cumprimento de sentença
          Valor atualizado conforme planilha</td>
    </tr>
  </tbody>
</table>
</body></html>`

const sealedPage = `
<html><body>
<table>
  <tr><td class="modalTitulo">Senha do processo</td></tr>
  <tr><td>Atendendo a resolução 121 do CNJ, o acesso é restrito às partes.</td></tr>
</table>
</body></html>`

const paginationPage = `
<html><body>
<div id="listagemDeProcessos">
  <a class="linkProcesso" href="/cpopg/show.do?a=1">0001234-56.2020.8.26.0100 (principal)</a>
  <a class="linkProcesso" href="/cpopg/show.do?a=2">0001234-56.2020.8.26.0100 (apenso)</a>
</div>
<span class="resultadoPaginacao">Resultados 1 a 2 de 2</span>
</body></html>`

const messagePage = `
<html><body>
<table>
  <tr><td id="mensagemRetorno">
    Não existem informações disponíveis para os parâmetros informados.
  </td></tr>
</table>
</body></html>`
