package launcher

import "html/template"

// indexPageData is injected into the page on every load.
type indexPageData struct {
	SessionID  string
	WebhookURL string
}

var indexPageTmpl = template.Must(template.New("index").Parse(indexPageHTML))

const indexPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Askhook</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: linear-gradient(135deg, #0f0f1e 0%, #1a1a2e 100%);
            color: #e8eaed;
            height: 100vh;
            display: flex;
            flex-direction: column;
            overflow: hidden;
        }

        .header {
            background: rgba(26, 26, 46, 0.95);
            backdrop-filter: blur(10px);
            padding: 1rem 2rem;
            border-bottom: 1px solid rgba(255, 255, 255, 0.1);
            display: flex;
            align-items: center;
            gap: 1.5rem;
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.3);
        }

        .header h1 {
            font-size: 1.5rem;
            font-weight: 600;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }

        .url-row {
            flex: 1;
            display: flex;
            align-items: center;
            gap: 0.75rem;
        }

        .url-row label {
            font-size: 0.9rem;
            color: rgba(232, 234, 237, 0.7);
            white-space: nowrap;
        }

        .url-row input {
            flex: 1;
            padding: 0.625rem 1rem;
            border: 1px solid rgba(255, 255, 255, 0.15);
            border-radius: 10px;
            background: rgba(255, 255, 255, 0.05);
            color: #e8eaed;
            font-size: 0.9rem;
            transition: all 0.2s ease;
        }

        .url-row input:focus {
            outline: none;
            border-color: #667eea;
            background: rgba(255, 255, 255, 0.08);
            box-shadow: 0 0 0 3px rgba(102, 126, 234, 0.2);
        }

        .notice {
            display: none;
            margin: 0.75rem 2rem 0;
            padding: 0.75rem 1.25rem;
            border-radius: 12px;
            background: rgba(234, 179, 102, 0.15);
            border: 1px solid rgba(234, 179, 102, 0.4);
            color: #f0c987;
            font-size: 0.9rem;
            animation: slideIn 0.3s ease-out;
        }

        .notice.visible { display: block; }

        .panels {
            flex: 1;
            display: flex;
            gap: 1.5rem;
            max-width: 1400px;
            width: 100%;
            margin: 0 auto;
            padding: 1.5rem 2rem;
            overflow: hidden;
        }

        .panel {
            flex: 1;
            display: flex;
            flex-direction: column;
            background: rgba(255, 255, 255, 0.04);
            border: 1px solid rgba(255, 255, 255, 0.1);
            border-radius: 16px;
            overflow: hidden;
        }

        .panel h2 {
            padding: 0.875rem 1.25rem;
            font-size: 0.95rem;
            font-weight: 600;
            color: rgba(232, 234, 237, 0.8);
            border-bottom: 1px solid rgba(255, 255, 255, 0.08);
        }

        .panel-body {
            flex: 1;
            overflow-y: auto;
            padding: 1.25rem;
            display: flex;
            flex-direction: column;
            gap: 1rem;
        }

        .panel-body::-webkit-scrollbar { width: 6px; }
        .panel-body::-webkit-scrollbar-track { background: rgba(255, 255, 255, 0.05); border-radius: 3px; }
        .panel-body::-webkit-scrollbar-thumb { background: rgba(102, 126, 234, 0.5); border-radius: 3px; }
        .panel-body::-webkit-scrollbar-thumb:hover { background: rgba(102, 126, 234, 0.7); }

        .message {
            padding: 0.875rem 1.25rem;
            border-radius: 14px;
            max-width: 85%;
            word-wrap: break-word;
            line-height: 1.5;
            animation: slideIn 0.3s ease-out;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.2);
        }

        @keyframes slideIn {
            from { opacity: 0; transform: translateY(10px); }
            to { opacity: 1; transform: translateY(0); }
        }

        .message.user {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            align-self: flex-end;
            color: white;
            border-bottom-right-radius: 4px;
        }

        .message.system {
            background: rgba(255, 255, 255, 0.08);
            align-self: flex-start;
            border: 1px solid rgba(255, 255, 255, 0.1);
            border-bottom-left-radius: 4px;
        }

        .message-head {
            font-size: 0.75rem;
            opacity: 0.7;
            margin-bottom: 0.25rem;
        }

        .record {
            background: rgba(255, 255, 255, 0.06);
            border: 1px solid rgba(255, 255, 255, 0.1);
            border-radius: 14px;
            padding: 1rem 1.25rem;
            animation: slideIn 0.3s ease-out;
        }

        .record-head {
            font-size: 0.85rem;
            font-weight: 600;
            color: #9fa8ff;
            margin-bottom: 0.5rem;
        }

        .record pre {
            background: rgba(0, 0, 0, 0.3);
            padding: 0.75rem;
            border-radius: 8px;
            overflow-x: auto;
            border: 1px solid rgba(255, 255, 255, 0.1);
            font-size: 0.85rem;
            line-height: 1.5;
            white-space: pre-wrap;
        }

        .empty {
            color: rgba(232, 234, 237, 0.4);
            font-size: 0.9rem;
            text-align: center;
            padding: 2rem 0;
        }

        .composer {
            display: flex;
            gap: 0.75rem;
            max-width: 1400px;
            width: 100%;
            margin: 0 auto;
            padding: 0 2rem 1.5rem;
        }

        .composer input {
            flex: 1;
            padding: 0.875rem 1.25rem;
            border: 1px solid rgba(255, 255, 255, 0.15);
            border-radius: 14px;
            background: rgba(255, 255, 255, 0.05);
            color: #e8eaed;
            font-size: 1rem;
            transition: all 0.2s ease;
        }

        .composer input:focus {
            outline: none;
            border-color: #667eea;
            background: rgba(255, 255, 255, 0.08);
            box-shadow: 0 0 0 3px rgba(102, 126, 234, 0.2);
        }

        .composer input:disabled {
            opacity: 0.5;
            cursor: not-allowed;
        }

        .composer input::placeholder { color: rgba(232, 234, 237, 0.5); }

        .composer button {
            padding: 0.875rem 2rem;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border: none;
            border-radius: 14px;
            cursor: pointer;
            font-size: 1rem;
            font-weight: 600;
            transition: all 0.2s ease;
            box-shadow: 0 4px 12px rgba(102, 126, 234, 0.4);
        }

        .composer button:hover:enabled {
            transform: translateY(-2px);
            box-shadow: 0 6px 16px rgba(102, 126, 234, 0.5);
        }

        .composer button:disabled {
            background: rgba(255, 255, 255, 0.1);
            cursor: not-allowed;
            transform: none;
            box-shadow: none;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Askhook</h1>
        <div class="url-row">
            <label for="webhookUrl">Webhook URL</label>
            <input type="text" id="webhookUrl" placeholder="https://hooks.example.com/analyze" value="{{.WebhookURL}}" />
        </div>
    </div>
    <div class="notice" id="notice"></div>
    <div class="panels">
        <div class="panel">
            <h2>Conversation</h2>
            <div class="panel-body" id="messages"></div>
        </div>
        <div class="panel">
            <h2>Analysis Results</h2>
            <div class="panel-body" id="results"></div>
        </div>
    </div>
    <div class="composer">
        <input type="text" id="question" placeholder="Ask a question..." />
        <button id="askButton">Ask</button>
    </div>
    <script>
        const sessionId = "{{.SessionID}}";
        const messagesDiv = document.getElementById('messages');
        const resultsDiv = document.getElementById('results');
        const questionInput = document.getElementById('question');
        const askButton = document.getElementById('askButton');
        const webhookInput = document.getElementById('webhookUrl');
        const noticeDiv = document.getElementById('notice');
        let noticeTimer = null;

        function showNotice(text) {
            noticeDiv.textContent = text;
            noticeDiv.classList.add('visible');
            clearTimeout(noticeTimer);
            noticeTimer = setTimeout(() => noticeDiv.classList.remove('visible'), 4000);
        }

        function renderState(state) {
            messagesDiv.innerHTML = '';
            state.messages.forEach((msg) => {
                const div = document.createElement('div');
                div.className = 'message ' + msg.origin;
                const head = document.createElement('div');
                head.className = 'message-head';
                const label = msg.origin === 'user' ? 'You' : 'System';
                head.textContent = label + ' at ' + new Date(msg.timestamp).toLocaleTimeString();
                const body = document.createElement('div');
                body.textContent = msg.text;
                div.appendChild(head);
                div.appendChild(body);
                messagesDiv.appendChild(div);
            });
            messagesDiv.scrollTop = messagesDiv.scrollHeight;

            resultsDiv.innerHTML = '';
            if (state.analyses.length === 0) {
                const empty = document.createElement('div');
                empty.className = 'empty';
                empty.textContent = 'No analysis results yet.';
                resultsDiv.appendChild(empty);
                return;
            }
            state.analyses.forEach((rec) => {
                const card = document.createElement('div');
                card.className = 'record';
                const head = document.createElement('div');
                head.className = 'record-head';
                head.textContent = rec.question + ' at ' + new Date(rec.timestamp).toLocaleTimeString();
                const pre = document.createElement('pre');
                pre.textContent = rec.rendered;
                card.appendChild(head);
                card.appendChild(pre);
                resultsDiv.appendChild(card);
            });
        }

        function setBusy(busy) {
            questionInput.disabled = busy;
            askButton.disabled = busy;
            askButton.textContent = busy ? 'Waiting...' : 'Ask';
        }

        async function ask() {
            if (questionInput.value.trim() === '') {
                return;
            }
            const webhookUrl = webhookInput.value.trim();
            if (webhookUrl === '') {
                alert('No webhook URL is configured. Set one before asking a question.');
                return;
            }
            setBusy(true);
            try {
                const response = await fetch('/api/ask', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ sessionId: sessionId, webhookUrl: webhookUrl, question: questionInput.value })
                });
                const data = await response.json();
                if (!response.ok) {
                    showNotice(data.error || 'Request failed.');
                    return;
                }
                renderState(data.state);
                if (!data.ok) {
                    showNotice(data.notice || 'The webhook exchange failed.');
                }
            } catch (error) {
                showNotice('Could not reach the askhook server.');
            } finally {
                setBusy(false);
                questionInput.value = '';
                questionInput.focus();
            }
        }

        async function refresh() {
            try {
                const response = await fetch('/api/session/' + sessionId);
                if (!response.ok) return;
                renderState(await response.json());
            } catch (error) {
                // server gone; leave the page as is
            }
        }

        askButton.addEventListener('click', ask);
        questionInput.addEventListener('keypress', (e) => { if (e.key === 'Enter') ask(); });
        questionInput.focus();
        refresh();
    </script>
</body>
</html>`
